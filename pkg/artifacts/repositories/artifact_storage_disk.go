package artifactrepositories

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

type localArtifactStorage struct {
	rootDir string
}

var _ ArtifactStorage = (*localArtifactStorage)(nil)

func NewLocalArtifactStorage(rootDir string) ArtifactStorage {
	return &localArtifactStorage{rootDir}
}

func (s *localArtifactStorage) Save(ctx context.Context, key string, data []byte) error {
	fullPath := filepath.Join(s.rootDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	if err := ioutil.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	return nil
}

var ErrStorageWriteFailed = errors.New("artifact write failed")
