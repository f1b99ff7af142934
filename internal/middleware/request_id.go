package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ===========================================================================
// Request ID Middleware
// Unique id per request, stored in the context and echoed in the response
// ===========================================================================

const (
	// RequestIDKey gin context key of the request id
	RequestIDKey = "request_id"

	// RequestIDHeader header carrying the request id
	RequestIDHeader = "X-Request-ID"
)

// RequestID reuses the caller's X-Request-ID or generates a UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request id, or "" outside the middleware
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
