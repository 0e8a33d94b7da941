package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/Uoerim/UniSphere-sub001/internal/api"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client IP. Idle entries are
// pruned lazily on lookup once pruneEvery new clients have been seen,
// so no background goroutine is needed.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	inserts int
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const pruneEvery = 256

func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}
}

func (rl *RateLimiter) bucketFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.clients[ip]; ok {
		b.lastSeen = time.Now()
		return b.limiter
	}

	rl.inserts++
	if rl.inserts >= pruneEvery {
		rl.inserts = 0
		cutoff := time.Now().Add(-rl.ttl)
		for key, b := range rl.clients {
			if b.lastSeen.Before(cutoff) {
				delete(rl.clients, key)
			}
		}
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.clients[ip] = &clientBucket{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *RateLimiter) Allow(ip string) bool {
	return rl.bucketFor(ip).Allow()
}

func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := NewRateLimiter(rps, burst, 3*time.Minute)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
