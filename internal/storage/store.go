package storage

import (
	"encoding/json"
	"errors"
	"log"
)

// ErrNotFound is returned by Load when nothing has been saved under a key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a whole-value key/value store. Every Save rewrites the entire
// value under its key; there are no partial updates at this layer.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// LoadJSON decodes the value under key into v. A missing key or an
// unparseable stored value leaves v untouched and returns false; corruption
// is logged and never surfaces to the caller.
func LoadJSON(s Store, key string, v any) bool {
	raw, err := s.Load(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("storage: load %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("storage: corrupt value under %q, using defaults: %v", key, err)
		return false
	}
	return true
}

// SaveJSON serializes v and writes it under key. Failures are logged; the
// boolean result is for callers that must confirm the write.
func SaveJSON(s Store, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage: marshal %q: %v", key, err)
		return false
	}
	if err := s.Save(key, raw); err != nil {
		log.Printf("storage: save %q: %v", key, err)
		return false
	}
	return true
}
