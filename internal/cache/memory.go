package cache

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[Key][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[Key][]byte{}}
}

func (m *MemoryStore) Get(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.entries[key]
	return payload, ok, nil
}

func (m *MemoryStore) Put(_ context.Context, key Key, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
	return nil
}

// Clear empties the store. Intended for tests.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[Key][]byte{}
}

func (m *MemoryStore) Close() error { return nil }
