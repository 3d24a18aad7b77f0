package middleware

import (
	"gemini-chatbot/pkg/log"
)

// Config tunes the middlewares.
type Config struct {
	// RateLimitPerMin is the per-client request budget of rate limited routes.
	// Zero disables rate limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
