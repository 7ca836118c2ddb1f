package store

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
)

type filePrefStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFilePrefStore persists preferences as a single JSON object on disk,
// rewritten on every mutation. A missing file starts empty.
func NewFilePrefStore(path string) (*filePrefStore, error) {
	s := &filePrefStore{path: path, values: make(map[string]string)}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errs.NewStorageError("prefs.load", err.Error())
	}
	if err := json.Unmarshal(b, &s.values); err != nil {
		return nil, errs.NewStorageError("prefs.load", "corrupt preference file: "+err.Error())
	}
	return s, nil
}

func (s *filePrefStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *filePrefStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

func (s *filePrefStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

func (s *filePrefStore) flush() error {
	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errs.NewStorageError("prefs.flush", err.Error())
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return errs.NewStorageError("prefs.flush", err.Error())
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errs.NewStorageError("prefs.flush", err.Error())
	}
	return nil
}
