package ratelimit

import (
	"sync"
	"time"
)

// Limit is a token-bucket budget for one upstream provider.
type Limit struct {
	Capacity     float64
	RefillPerSec float64
}

// Defaults per provider. Capacities cover a full market aggregation burst;
// refill rates stay under each provider's published free-tier limits.
var Defaults = map[string]Limit{
	"yahoo":     {Capacity: 120, RefillPerSec: 20},
	"coingecko": {Capacity: 20, RefillPerSec: 0.5},
	"finnhub":   {Capacity: 30, RefillPerSec: 1},
	"spot":      {Capacity: 30, RefillPerSec: 5},
}

type bucket struct {
	tokens float64
	limit  Limit
	last   time.Time
}

// Limiter throttles outbound provider calls with one token bucket per
// provider key. Unknown keys are never throttled.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limits  map[string]Limit
	now     func() time.Time
}

func New(limits map[string]Limit) *Limiter {
	if limits == nil {
		limits = Defaults
	}
	return &Limiter{
		buckets: make(map[string]*bucket),
		limits:  limits,
		now:     time.Now,
	}
}

// Allow consumes one token for the provider key if available.
func (l *Limiter) Allow(key string) bool {
	limit, ok := l.limits[key]
	if !ok {
		return true
	}

	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: limit.Capacity, limit: limit, last: now}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.limit.RefillPerSec
		if b.tokens > b.limit.Capacity {
			b.tokens = b.limit.Capacity
		}
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}
