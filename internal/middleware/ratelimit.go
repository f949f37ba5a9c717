package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"care-schedule/pkg/response"
)

// RateLimitConfig configures the per-client token buckets.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	MaxClients     int
	TTL            time.Duration
}

const (
	defaultRequestsPerMin = 120
	defaultMaxClients     = 1000
	defaultClientTTL      = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client. Idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}
	maxClients := cfg.MaxClients
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultClientTTL
	}

	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		rate:     rate.Limit(float64(perMin) / 60.0), // per second
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

// RateLimit rejects requests with 429 once a client IP exhausts its bucket.
// It is a pass-through when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
