package store

import (
	"context"
	"encoding/json"
	"sync"

	"classboard/internal/model"
)

// MemStore keeps collections as JSON blobs in a map. It backs tests and the
// no-redis dev mode. The JSON round-trip gives callers the same value-copy
// semantics as the redis store: a loaded collection shares no memory with
// the stored one.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Load(ctx context.Context, key string, dst any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return model.NewStorageError(key, err)
	}
	return nil
}

func (s *MemStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return model.NewStorageError(key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
