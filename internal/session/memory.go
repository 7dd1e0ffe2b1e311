package session

import (
	"sort"
	"sync"
	"time"

	"docmap/internal/model"
)

type entry struct {
	mindmap      *model.Mindmap
	lastAccessed time.Time
}

// MemoryStore keeps mindmaps in process memory. Entries lapse once their
// keep-alive window passes and the least recently accessed entry is evicted
// when capacity is reached.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	maxEntries int
	ttl        time.Duration
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding at most maxEntries mindmaps, each
// kept for ttl past its last access.
func NewMemoryStore(maxEntries int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]*entry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// Put stores m. When the store is full and m is a new entry, the least
// recently accessed entry is dropped to make room.
func (s *MemoryStore) Put(m *model.Mindmap) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[m.ID]; !exists && len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}
	s.entries[m.ID] = &entry{mindmap: m, lastAccessed: time.Now()}
}

// Get returns the mindmap with the given ID and marks it as recently used.
func (s *MemoryStore) Get(id string) (*model.Mindmap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	e.lastAccessed = time.Now()
	return e.mindmap, true
}

// List returns up to limit mindmaps, newest first by creation time.
func (s *MemoryStore) List(limit int) []*model.Mindmap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*model.Mindmap, 0, len(s.entries))
	for _, e := range s.entries {
		items = append(items, e.mindmap)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Delete removes the mindmap with the given ID.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// Len reports how many mindmaps are currently held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// CleanupExpired removes entries not accessed within the TTL and reports
// how many were dropped. Callers run this periodically.
func (s *MemoryStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, e := range s.entries {
		if e.lastAccessed.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) evictOldestLocked() {
	var oldestID string
	var oldestTime time.Time
	for id, e := range s.entries {
		if oldestID == "" || e.lastAccessed.Before(oldestTime) {
			oldestID = id
			oldestTime = e.lastAccessed
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}
