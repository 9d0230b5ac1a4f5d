package artifactrepositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	storageconnections "picbridge/pkg/artifacts/repositories/connections"
)

type artifactsRepository struct {
	conn storageconnections.ArtifactDBConnection
}

var _ ArtifactsRepository = (*artifactsRepository)(nil)

func NewArtifactsRepository(conn storageconnections.ArtifactDBConnection) ArtifactsRepository {
	return &artifactsRepository{conn}
}

func (repo *artifactsRepository) CreateArtifactInfo(ctx context.Context, info ArtifactModel) error {
	collection := repo.conn.Collection("artifacts")

	switch err := collection.FindOne(ctx, bson.M{"artifactId": info.ArtifactID}).Err(); err {
	case mongo.ErrNoDocuments:
	case nil:
		return ErrArtifactAlreadyExists
	default:
		return err
	}

	_, err := collection.InsertOne(ctx, info)
	return err
}

func (repo *artifactsRepository) GetArtifactInfo(ctx context.Context, artifactID string) (ArtifactModel, error) {
	collection := repo.conn.Collection("artifacts")

	var info ArtifactModel
	if err := collection.FindOne(ctx, bson.M{"artifactId": artifactID}).Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return info, ErrArtifactNotFound
		}

		return ArtifactModel{}, err
	}

	return info, nil
}

var (
	ErrArtifactNotFound      = errors.New("artifact not found")
	ErrArtifactAlreadyExists = errors.New("artifact already exists")
)
