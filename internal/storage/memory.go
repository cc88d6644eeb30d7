package storage

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory KeyValue used by tests and by callers that
// do not need durability.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
	// FailWrites makes Set return an error, for exercising the store's
	// best-effort persistence path.
	FailWrites error
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

// Get returns the stored value for key, if any.
func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set writes or replaces the value for key.
func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}
