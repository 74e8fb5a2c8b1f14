package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and ephemeral setups.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]Snapshot
}

func NewMemory() *MemoryStore {
	return &MemoryStore{items: map[string]Snapshot{}}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, ok := m.items[key]
	if !ok {
		return Snapshot{}, nil
	}
	data := append([]byte(nil), snap.Data...)
	return Snapshot{Version: snap.Version, Data: data}, nil
}

func (m *MemoryStore) Put(_ context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.items[key]
	if current.Version != expectedVersion {
		return 0, ErrVersionConflict
	}
	next := Snapshot{
		Version: expectedVersion + 1,
		Data:    append([]byte(nil), data...),
	}
	m.items[key] = next
	return next.Version, nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
