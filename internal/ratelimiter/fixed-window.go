package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type FixedWindowRateLimiter struct {
	sync.Mutex
	windows map[string]*window
	limit   int
	frame   time.Duration
}

type window struct {
	count int
	start time.Time
}

func NewFixedWindowLimiter(limit int, frame time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		frame:   frame,
	}
}

// Allow reports whether the client identified by ip may proceed, and if not,
// how long until its window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := time.Now()

	rl.Lock()
	defer rl.Unlock()

	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.start) >= rl.frame {
		rl.windows[ip] = &window{count: 1, start: now}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, rl.frame - now.Sub(w.start)
}

// Cleanup drops windows that have fully elapsed. Called periodically so the
// map does not grow with one entry per client forever.
func (rl *FixedWindowRateLimiter) Cleanup() {
	now := time.Now()

	rl.Lock()
	defer rl.Unlock()

	for ip, w := range rl.windows {
		if now.Sub(w.start) >= rl.frame {
			delete(rl.windows, ip)
		}
	}
}
