package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the inbound X-Request-ID header or injects a fresh
// one, and makes it available via the gin context and the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := logger.RequestIDFromHeader(c.Request)
		c.Request.Header.Set(requestIDHeader, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Set(requestIDHeader, requestID)
		c.Next()
	}
}

// RequestIDFromContext returns the request id stored in the gin context.
func RequestIDFromContext(c *gin.Context) string {
	if val, ok := c.Get(requestIDHeader); ok {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}
