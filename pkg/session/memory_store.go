package session

import (
	"sync"
	"time"
)

// MemoryStore keeps sessions in-process. Expired entries are dropped lazily
// on access; a handful of sessions on a local shop never needs sweeping.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      map[string]interface{}
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Load(id string) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, nil
	}

	// Copy so the caller can mutate freely before Save.
	out := make(map[string]interface{}, len(entry.data))
	for k, v := range entry.data {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Save(id string, data map[string]interface{}, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(map[string]interface{}, len(data))
	for k, v := range data {
		stored[k] = v
	}
	s.entries[id] = memoryEntry{data: stored, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}
