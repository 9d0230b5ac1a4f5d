package mock_artifactrepositories

import (
	context "context"
	"sync"
)

// MockArtifactStorage is a hand-rolled in-memory storage fake that records
// every saved key and payload.
type MockArtifactStorage struct {
	artifacts map[string][]byte
	lock      sync.Mutex
	err       error
}

func NewMockArtifactStorage() *MockArtifactStorage {
	return &MockArtifactStorage{
		artifacts: make(map[string][]byte),
	}
}

func (s *MockArtifactStorage) ReturnError(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.err = err
}

func (s *MockArtifactStorage) Save(ctx context.Context, key string, data []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return s.err
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	s.artifacts[key] = stored
	return nil
}

func (s *MockArtifactStorage) GetStored(key string) ([]byte, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, ok := s.artifacts[key]
	return data, ok
}

func (s *MockArtifactStorage) StoredKeys() []string {
	s.lock.Lock()
	defer s.lock.Unlock()

	keys := make([]string, 0, len(s.artifacts))
	for key := range s.artifacts {
		keys = append(keys, key)
	}
	return keys
}
