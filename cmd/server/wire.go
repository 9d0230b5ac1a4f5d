//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"picbridge/pkg/artifacts"
	artifactrepositories "picbridge/pkg/artifacts/repositories"
	"picbridge/pkg/filefetcher"
	"picbridge/pkg/pictech"
	"picbridge/pkg/removal"
	"picbridge/pkg/translation"
)

func InitializeArtifactService(ctx context.Context) artifacts.ArtifactService {
	wire.Build(
		InitializeMongoConnectionConfig,
		InitializeMongoConnection,
		artifactrepositories.NewArtifactsRepository,

		InitializeArtifactStorage,

		artifacts.NewArtifactService,
	)

	return &artifacts.ArtifactServiceImplementation{}
}

func InitializePictechClient() pictech.Client {
	wire.Build(
		InitializePictechConfig,
		pictech.NewClient,
	)

	return &pictech.ClientImplementation{}
}

func InitializeTranslationService(client pictech.Client, artifactService artifacts.ArtifactService) translation.TranslationService {
	wire.Build(translation.NewTranslationService)
	return &translation.TranslationServiceImplementation{}
}

func InitializeRemovalService(client pictech.Client, artifactService artifacts.ArtifactService) removal.RemovalService {
	wire.Build(
		InitializeRemovalConfig,
		filefetcher.NewHTTPFetcher,
		removal.NewRemovalService,
	)

	return &removal.RemovalServiceImplementation{}
}
