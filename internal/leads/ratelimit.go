package leads

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bildo/landing/internal/config"
)

// maxTrackedClients bounds the limiter map; idle entries are dropped past it.
const maxTrackedClients = 10000

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits lead submissions per client key (the remote IP).
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	every    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

// NewRateLimiter builds a limiter from the leads configuration.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	return newRateLimiter(cfg.Leads.RequestsPerMinute, cfg.Leads.Burst)
}

func newRateLimiter(reqPerMin, burst int) *RateLimiter {
	if reqPerMin <= 0 {
		reqPerMin = 6
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		every:    rate.Every(time.Minute / time.Duration(reqPerMin)),
		burst:    burst,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

// Allow reports whether key may submit now.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cl, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxTrackedClients {
			l.pruneLocked(now)
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Tracked returns the number of clients currently held.
func (l *RateLimiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *RateLimiter) pruneLocked(now time.Time) {
	for key, cl := range l.limiters {
		if now.Sub(cl.lastSeen) > l.idle {
			delete(l.limiters, key)
		}
	}
}
