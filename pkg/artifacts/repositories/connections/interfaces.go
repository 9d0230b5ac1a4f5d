package storageconnections

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/mongo"
)

type ArtifactDBConnection interface {
	Collection(collectionName string) *mongo.Collection
}

type MinioBlockStorageConnection interface {
	PutObject(ctx context.Context, objectName string, objectSize int64, mimeType string, reader io.Reader) error
}
