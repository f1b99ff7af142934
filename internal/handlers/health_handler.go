package handlers

import (
	"context"
	"net/http"
	"time"

	"classapp-admin/internal/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler GET /health
type HealthHandler struct {
	storage string
	ping    func(ctx context.Context) error
	logger  *zap.Logger
}

// NewHealthHandler ping checks the storage backend, nil means always up
func NewHealthHandler(storage string, ping func(ctx context.Context) error, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{storage: storage, ping: ping, logger: logger}
}

// Health reports ok, or 503 when the storage backend does not answer
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Storage: h.storage, Time: time.Now().UTC()}

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.logger.Warn("health check failed", zap.String("storage", h.storage), zap.Error(err))
			resp.Status = "unavailable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
