package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"mental-health-support/pkg/response"
)

// RateLimit enforces a per-client token bucket. Keyed by client IP because
// the transport has no authenticated identity; the engine itself stays
// unaware of request rates.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.rateLimit.Enabled {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !mw.allow(key) {
			mw.l.Warnf(c.Request.Context(), "RateLimit: rejected %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}

		c.Next()
	}
}

func (mw Middleware) allow(key string) bool {
	limiter, ok := mw.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(mw.rateLimit.PerMinute)/60.0), mw.rateLimit.Burst)
		mw.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
