package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local runs that have
// no KV endpoint configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

func CreateMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return []byte(value), nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.items[key]
	delete(m.items, key)
	return ok, nil
}

func (m *MemoryStore) SetMulti(ctx context.Context, pairs []Pair) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range pairs {
		m.items[p.Key] = p.Value
	}
	return nil
}
