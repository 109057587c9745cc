package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mental-health-support/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the request context and echoes it in
// the response. A caller-supplied X-Request-ID is kept so ids correlate
// across services.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}
