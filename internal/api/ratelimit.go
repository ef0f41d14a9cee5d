package api

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/vietddude/bfhl/internal/metrics"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client address.
type RateLimiter struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether a request from key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, exists := rl.limiters[key]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Handler returns the rate limiting middleware handler.
// Health probes and metrics scrapes are never limited.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isProbe(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.Allow(clientKey(r)) {
			metrics.HTTPRateLimitedTotal.Inc()
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Cleanup removes limiters idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) > maxIdle {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// Run periodically removes idle limiters until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup(interval)
		}
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isProbe(path string) bool {
	return path == "/health" || path == "/health/detailed" || path == "/metrics"
}
