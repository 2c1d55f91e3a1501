package matchstore

import (
	"context"
	"sync"
	"time"

	"github.com/reawakn/matchengine/internal/domain/matching"
)

// MemoryStore caches pair scores in-process with per-entry expiry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	result    matching.MatchResult
	expiresAt time.Time
}

// NewMemoryStore constructs the in-memory score cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached result when present and not expired.
func (s *MemoryStore) Get(_ context.Context, key string) (matching.MatchResult, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return matching.MatchResult{}, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return matching.MatchResult{}, false, nil
	}
	return entry.result, true, nil
}

// Set stores the result; a non-positive TTL caches without expiry.
func (s *MemoryStore) Set(_ context.Context, key string, result matching.MatchResult, ttl time.Duration) error {
	entry := memoryEntry{result: result}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

// Invalidate drops the cached result, if any.
func (s *MemoryStore) Invalidate(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

var _ matching.ScoreCache = (*MemoryStore)(nil)
