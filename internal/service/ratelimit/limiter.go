package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// Limiter is a per-key token bucket. The analyze submit endpoint keys it by
// client address.
type Limiter struct {
	mu sync.Mutex
	m  map[string]*bucket
}

func New() *Limiter { return &Limiter{m: make(map[string]*bucket)} }

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string, capacity, refillPerSec float64) bool {
	now := time.Now()
	l.mu.Lock()
	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: capacity, capacity: capacity, refillRate: refillPerSec, last: now}
		l.m[key] = b
	}
	// refill
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.last = now
	}
	allowed := false
	if b.tokens >= 1 {
		b.tokens -= 1
		allowed = true
	}
	l.sweepLocked(now)
	l.mu.Unlock()
	return allowed
}

// sweepLocked drops buckets that have been full and idle long enough to be
// indistinguishable from a fresh one. Keeps the map bounded under churny
// client addresses.
func (l *Limiter) sweepLocked(now time.Time) {
	if len(l.m) < 1024 {
		return
	}
	for key, b := range l.m {
		idle := now.Sub(b.last).Seconds()
		if b.tokens+idle*b.refillRate >= b.capacity {
			delete(l.m, key)
		}
	}
}
