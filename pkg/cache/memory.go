package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value    interface{}
	storedAt time.Time
}

// MemoryStore implements Store with a mutex-guarded in-process map.
// Entries are never evicted; staleness is decided at read time so the last
// successful value is always available for disaster-recovery reads.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryItem
	now  func() time.Time
}

// NewMemoryStore creates an in-memory cache store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryItem),
		now:  time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, ttl time.Duration, dest interface{}) bool {
	s.mu.RLock()
	item, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().Sub(item.storedAt) > ttl {
		return false
	}
	return assign(dest, item.value)
}

func (s *MemoryStore) GetStale(_ context.Context, key string, dest interface{}) bool {
	s.mu.RLock()
	item, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return assign(dest, item.value)
}

func (s *MemoryStore) Set(_ context.Context, key string, value interface{}) {
	s.mu.Lock()
	s.data[key] = memoryItem{value: value, storedAt: s.now()}
	s.mu.Unlock()
}

func (s *MemoryStore) Clear(_ context.Context, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(keys) == 0 {
		s.data = make(map[string]memoryItem)
		return
	}
	for _, key := range keys {
		delete(s.data, key)
	}
}
