package middleware

import (
	"net/http"
	"sync"
	"time"
)

type rateLimiter struct {
	seen   map[string][]time.Time
	mu     sync.Mutex
	limit  int
	window time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window,
// keyed by client address.
func NewRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}

	// Drop stale entries periodically so the map doesn't grow unbounded.
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rl.cleanup()
		}
	}()

	return rl
}

func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, times := range rl.seen {
		valid := rl.withinWindow(times, now)
		if len(valid) == 0 {
			delete(rl.seen, ip)
		} else {
			rl.seen[ip] = valid
		}
	}
}

func (rl *rateLimiter) withinWindow(times []time.Time, now time.Time) []time.Time {
	var valid []time.Time
	for _, t := range times {
		if now.Sub(t) < rl.window {
			valid = append(valid, t)
		}
	}
	return valid
}

// Allow checks if a request from the given address should be allowed.
func (rl *rateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	valid := rl.withinWindow(rl.seen[ip], now)
	if len(valid) >= rl.limit {
		return false
	}

	rl.seen[ip] = append(valid, now)
	return true
}

// RateLimitMiddleware creates a middleware that rate limits requests
func RateLimitMiddleware(limiter *rateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.RemoteAddr) {
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
