package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, owner, key string, dest interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[owner+"/"+key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

func (s *MemoryStore) Save(_ context.Context, owner, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[owner+"/"+key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, owner, key string) error {
	s.mu.Lock()
	delete(s.data, owner+"/"+key)
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a slot with non-JSON bytes, for exercising
// fail-soft deserialization paths in tests.
func (s *MemoryStore) Corrupt(owner, key string) {
	s.mu.Lock()
	s.data[owner+"/"+key] = []byte("{not json")
	s.mu.Unlock()
}
