package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps collections as JSON blobs in process memory. It backs the
// test suites and the demo mode; contents are lost on shutdown.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, collection string, dest interface{}) error {
	s.mu.RLock()
	raw, ok := s.collections[collection]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding collection %q: %w", collection, err)
	}
	return nil
}

func (s *MemoryStore) Set(_ context.Context, collection string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", collection, err)
	}

	s.mu.Lock()
	s.collections[collection] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
