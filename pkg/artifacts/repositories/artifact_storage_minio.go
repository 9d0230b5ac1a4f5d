package artifactrepositories

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"

	storageconnections "picbridge/pkg/artifacts/repositories/connections"
)

type minioArtifactStorage struct {
	conn storageconnections.MinioBlockStorageConnection
}

var _ ArtifactStorage = (*minioArtifactStorage)(nil)

func NewMinioArtifactStorage(conn storageconnections.MinioBlockStorageConnection) ArtifactStorage {
	return &minioArtifactStorage{conn}
}

func (s *minioArtifactStorage) Save(ctx context.Context, key string, data []byte) error {
	mimeType := mime.TypeByExtension(path.Ext(key))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	if err := s.conn.PutObject(ctx, key, int64(len(data)), mimeType, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	return nil
}
