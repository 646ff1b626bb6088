package api

import (
	"sync"
	"time"
)

// RateLimiter is a per-client sliding-window counter. It is an explicitly
// constructed service rather than package-level state so multiple servers
// (and tests) get independent windows.
type RateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	window time.Duration
	max    int
	now    func() time.Time
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		hits:   make(map[string][]time.Time),
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Allow records one hit for the client and reports whether it stays within
// the window budget.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cutoff := now.Add(-r.window)

	kept := r.hits[client][:0]
	for _, hit := range r.hits[client] {
		if hit.After(cutoff) {
			kept = append(kept, hit)
		}
	}
	kept = append(kept, now)
	r.hits[client] = kept

	return len(kept) <= r.max
}
