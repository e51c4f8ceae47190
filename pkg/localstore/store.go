package localstore

import (
	"sync"
)

// Store is the process-local stand-in for the browser's localStorage that
// backs the dashboard collections. Values are whole serialized collections;
// every mutation rewrites the full value under its key. Single writer per
// key is assumed, the RWMutex only keeps concurrent requests from tearing
// a read.
type Store interface {
	Get(key string) (string, bool)

	// Set replaces the value under key. There are no partial writes.
	Set(key string, value string)

	Remove(key string)
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
