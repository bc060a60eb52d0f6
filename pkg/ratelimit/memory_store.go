package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultSweepInterval bounds how often MemoryStore scans for expired entries.
const DefaultSweepInterval = 5 * time.Minute

// MemoryStore keeps fixed-window entries in a process-local map. It runs no
// background goroutine: expired entries are swept opportunistically by
// CheckAndRecord at most once per sweep interval.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry

	sweepInterval time.Duration
	lastSweep     time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithSweepInterval sets how often expired entries are removed.
func WithSweepInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		entries:       make(map[string]*Entry),
		sweepInterval: DefaultSweepInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CheckAndRecord implements Store. The whole read-modify-write happens under
// one lock so concurrent callers cannot both pass a full quota.
func (s *MemoryStore) CheckAndRecord(_ context.Context, key string, now time.Time, limit int, window time.Duration) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastSweep.IsZero() {
		s.lastSweep = now
	} else if now.Sub(s.lastSweep) >= s.sweepInterval {
		s.sweepLocked(now, window)
		s.lastSweep = now
	}

	e, exists := s.entries[key]
	if !exists || e.Expired(now, window) {
		e = &Entry{Count: 1, WindowStart: now}
		s.entries[key] = e
		return *e, true, nil
	}

	if e.Count >= limit {
		return *e, false, nil
	}

	e.Count++
	return *e, true, nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[key]
	if !exists {
		return Entry{}, false, nil
	}
	return *e, true, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Sweep removes every entry whose window has elapsed at now and returns how
// many were removed.
func (s *MemoryStore) Sweep(now time.Time, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.sweepLocked(now, window)
	s.lastSweep = now
	return removed
}

func (s *MemoryStore) sweepLocked(now time.Time, window time.Duration) int {
	removed := 0
	for key, e := range s.entries {
		if e.Expired(now, window) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked identities, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
