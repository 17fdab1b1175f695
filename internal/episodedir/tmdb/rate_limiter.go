package tmdb

import (
	"sync"
	"time"
)

// TMDB allows roughly 40 requests per 10 seconds per key; staying a little
// under that avoids 429s when other tools share the key.
const rateWindow = 10 * time.Second

// rateLimiter is a sliding-window limiter. wait blocks until a request
// slot is available; it never fails.
type rateLimiter struct {
	mu          sync.Mutex
	requests    []time.Time
	maxRequests int
	window      time.Duration
}

func newRateLimiter(maxRequests int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		maxRequests: maxRequests,
		window:      window,
		requests:    make([]time.Time, 0, maxRequests),
	}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()

	now := time.Now()
	r.evict(now)

	if len(r.requests) < r.maxRequests {
		r.requests = append(r.requests, now)
		r.mu.Unlock()
		return
	}

	// Sleep until the oldest recorded request leaves the window, with a
	// small buffer so it has actually expired.
	waitTime := r.window - now.Sub(r.requests[0]) + 10*time.Millisecond
	r.mu.Unlock()

	time.Sleep(waitTime)

	r.mu.Lock()
	r.evict(time.Now())
	r.requests = append(r.requests, time.Now())
	r.mu.Unlock()
}

// evict drops requests that fell out of the window. Caller holds mu.
func (r *rateLimiter) evict(now time.Time) {
	cutoff := now.Add(-r.window)
	valid := r.requests[:0]
	for _, req := range r.requests {
		if req.After(cutoff) {
			valid = append(valid, req)
		}
	}
	r.requests = valid
}
