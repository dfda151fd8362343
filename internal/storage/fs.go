package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// FSStore keeps one JSON file per key under a base directory.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) Load(key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("empty key")
	}
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *FSStore) Save(key string, value []byte) error {
	if key == "" {
		return errors.New("empty key")
	}
	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, value, 0o644)
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.base, filepath.Clean(key)+".json")
}
