package store

import (
	"context"
	"sync"
)

// PrefStore is the injected key-value store behind the preference side-table,
// the server-side counterpart of the browser's persistent local storage.
// Values are strings, writers are last-write-wins, and there is no
// versioning.
type PrefStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type memoryPrefStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryPrefStore returns the default in-process preference store, also
// used as the test fake.
func NewMemoryPrefStore() *memoryPrefStore {
	return &memoryPrefStore{values: make(map[string]string)}
}

func (s *memoryPrefStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memoryPrefStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryPrefStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
