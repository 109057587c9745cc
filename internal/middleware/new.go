package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"mental-health-support/config"
	"mental-health-support/pkg/log"
)

const (
	limiterCacheSize = 1000
	limiterCacheTTL  = 5 * time.Minute
)

type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig

	// One token bucket per client key, evicted after idle TTL so the
	// cache stays bounded no matter how many clients appear.
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		rateLimit: rateLimit,
		limiters:  expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
	}
}
