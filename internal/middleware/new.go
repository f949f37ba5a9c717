package middleware

import (
	"care-schedule/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if rl.Enabled {
		m.limiter = newRateLimiter(rl)
	}
	return m
}
