package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps session slots in process memory. It backs single-node
// deployments that run without Redis, and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Set(_ context.Context, accessID string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.entries[accessID] = entry
	return nil
}

func (s *MemoryStore) Get(_ context.Context, accessID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[accessID]
	if !ok {
		return "", ErrNoSession
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		delete(s.entries, accessID)
		return "", ErrNoSession
	}
	return entry.value, nil
}

func (s *MemoryStore) Del(_ context.Context, accessID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, accessID)
	return nil
}
