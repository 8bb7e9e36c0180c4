package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemory returns an in-process Store. Used when no Redis address is
// configured, and by tests.
func NewMemory() Store {
	return &memoryStore{blobs: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.blobs[key]
	return val, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
