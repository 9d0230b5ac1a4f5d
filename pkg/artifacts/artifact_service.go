package artifacts

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	artifactrepositories "picbridge/pkg/artifacts/repositories"
)

const defaultExtension = ".png"

type ArtifactServiceImplementation struct {
	artifactsRepository artifactrepositories.ArtifactsRepository
	artifactStorage     artifactrepositories.ArtifactStorage
}

var _ ArtifactService = (*ArtifactServiceImplementation)(nil)

func NewArtifactService(
	artifactsRepository artifactrepositories.ArtifactsRepository,
	artifactStorage artifactrepositories.ArtifactStorage,
) ArtifactService {
	return &ArtifactServiceImplementation{
		artifactsRepository,
		artifactStorage,
	}
}

func (s *ArtifactServiceImplementation) StoreBytes(ctx context.Context, category, filenameHint string, data []byte) (string, error) {
	artifactID := uuid.New().String()
	fileName := artifactID + extensionOf(filenameHint)
	key := path.Join(category, time.Now().Format("2006-01-02"), fileName)

	if err := s.artifactStorage.Save(ctx, key, data); err != nil {
		return "", err
	}

	info := artifactrepositories.ArtifactModel{
		ArtifactID:  artifactID,
		Category:    category,
		FileName:    fileName,
		RelativeURL: key,
		Size:        int64(len(data)),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.artifactsRepository.CreateArtifactInfo(ctx, info); err != nil {
		return "", err
	}

	return key, nil
}

func (s *ArtifactServiceImplementation) StoreBase64(ctx context.Context, category, filenameHint, encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64Data, err)
	}

	return s.StoreBytes(ctx, category, filenameHint, data)
}

func (s *ArtifactServiceImplementation) GetArtifactInfo(ctx context.Context, artifactID string) (artifactrepositories.ArtifactModel, error) {
	return s.artifactsRepository.GetArtifactInfo(ctx, artifactID)
}

func extensionOf(filenameHint string) string {
	if ext := path.Ext(filenameHint); ext != "" {
		return ext
	}

	return defaultExtension
}

var ErrInvalidBase64Data = errors.New("invalid base64 image data")
