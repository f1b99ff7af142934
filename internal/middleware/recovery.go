package middleware

import (
	"net/http"
	"runtime/debug"

	"classapp-admin/internal/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Recovery Middleware
// Turns a handler panic into a 500 response and logs the stack trace
// ===========================================================================

// Recovery middleware catching panics in handlers
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.String("stack", string(debug.Stack())),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error(
					"INTERNAL_ERROR",
					"An internal error occurred",
				))
			}
		}()

		c.Next()
	}
}
