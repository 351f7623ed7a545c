package http

import (
	"sync"

	"github.com/fwojciec/linkcheck"
	"golang.org/x/time/rate"
)

var _ linkcheck.RequestLimiter = (*Limiter)(nil)

// Limiter provides per-client rate limiting using token buckets.
// Each key (typically the remote host) gets its own bucket.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewLimiter creates a Limiter allowing rps requests per second per key,
// with bursts of up to burst requests. Burst is raised to 1 if smaller.
func NewLimiter(rps float64, burst int) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    max(burst, 1),
	}
}

// Allow reports whether a request for key may proceed, consuming a token if so.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
