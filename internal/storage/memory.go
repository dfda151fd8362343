package storage

import "sync"

type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewInMemoryStore is used by tests and demos; nothing survives the process.
func NewInMemoryStore() Store {
	return &memoryStore{values: map[string][]byte{}}
}

func (m *memoryStore) Load(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *memoryStore) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
