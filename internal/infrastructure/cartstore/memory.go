package cartstore

import (
	"context"
	"sync"

	"github.com/peekay08/storefront/internal/domain"
)

// MemoryStore is a thread-safe in-memory key-value store.
// Contents do not survive the process; used for tests and the "memory" store type.
type MemoryStore struct {
	data  map[string][]byte
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get retrieves a copy of the value stored under key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, exists := s.data[key]
	if !exists {
		return nil, domain.ErrCartKeyNotFound
	}

	return append([]byte(nil), value...), nil
}

// Set overwrites the value stored under key
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Copy so callers can reuse their buffer, as a real store would
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}
