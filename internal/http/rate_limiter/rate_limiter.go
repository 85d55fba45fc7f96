// Package rate_limiter tracks one token-bucket limiter per client IP.
package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Registry hands out per-IP limiters and evicts idle ones.
type Registry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

// NewRegistry creates a registry allowing limit events/sec with the given burst.
func NewRegistry(limit rate.Limit, burst int) *Registry {
	return &Registry{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
	}
}

// Visitor returns the limiter for an IP, creating it on first sight.
func (r *Registry) Visitor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// StartCleanupLoop evicts visitors idle for more than five minutes. Run in a
// goroutine.
func (r *Registry) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		r.mu.Lock()
		for ip, v := range r.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(r.visitors, ip)
			}
		}
		r.mu.Unlock()
	}
}
