package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a fixed window counter per key kept in process memory. The first
// hit of a key opens its window, every hit inside the window is counted and the
// count starts over once the window has passed.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	max     int
	window  time.Duration
}

type memoryEntry struct {
	windowStart time.Time
	count       int
}

// NewMemoryStore allows max hits per key per window. A max below 1 is taken as 1.
func NewMemoryStore(max int, window time.Duration) *MemoryStore {
	if max < 1 {
		max = 1
	}
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		max:     max,
		window:  window,
	}
}

func (s *MemoryStore) Take(_ context.Context, key string) (Decision, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok || now.Sub(ent.windowStart) >= s.window {
		ent = &memoryEntry{windowStart: now}
		s.entries[key] = ent
	}
	ent.count++

	remaining := s.max - ent.count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   ent.count <= s.max,
		Remaining: remaining,
		ResetIn:   ent.windowStart.Add(s.window).Sub(now),
	}, nil
}

// Cleanup drops the counters of keys whose window has passed
func (s *MemoryStore) Cleanup() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if now.Sub(ent.windowStart) >= s.window {
			delete(s.entries, k)
		}
	}
}

// StartJanitor runs Cleanup every interval until ctx is done
func (s *MemoryStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}
