// Package server assembles the Gin engine and registers every route.
package server

import (
	"context"
	"net/http"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/handlers"
	"classapp-admin/internal/middleware"
	"classapp-admin/internal/observability/metrics"
	"classapp-admin/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options router inputs
type Options struct {
	Services *services.Services
	Paging   handlers.Paging
	Logger   *zap.Logger

	// AllowedOrigins CORS origins, "*" allows any
	AllowedOrigins []string

	// MetricsPath Prometheus endpoint, empty disables it
	MetricsPath string

	// Storage backend name reported by /health, Ping checks it (optional)
	Storage string
	Ping    func(ctx context.Context) error
}

// NewRouter builds the engine
func NewRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Paging.DefaultLimit <= 0 || opts.Paging.MaxLimit <= 0 {
		opts.Paging = handlers.DefaultPaging()
	}
	dto.RegisterJSONFieldNames()

	router := gin.New()

	// Middleware
	skip := []string{"/health"}
	if opts.MetricsPath != "" {
		skip = append(skip, opts.MetricsPath)
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log, skip...))
	if opts.MetricsPath != "" {
		router.Use(metrics.Middleware())
	}
	router.Use(middleware.CORS(opts.AllowedOrigins))

	// Health check & metrics
	health := handlers.NewHealthHandler(opts.Storage, opts.Ping, log)
	router.GET("/health", health.Health)
	if opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, gin.WrapH(metrics.Handler()))
	}

	// =========================================================================
	// API Routes
	// =========================================================================
	svc := opts.Services
	api := router.Group("/api")
	{
		handlers.NewUserHandler(svc.Users, opts.Paging, log).RegisterRoutes(api)
		handlers.NewConversationHandler(svc.Conversations, opts.Paging, log).RegisterRoutes(api)
		handlers.NewAnnouncementHandler(svc.Announcements, opts.Paging, log).RegisterRoutes(api)
		handlers.NewCatalogHandler(svc.Catalog, log).RegisterRoutes(api)
		handlers.NewSettingsHandler(svc.Settings, svc.Analytics, log).RegisterRoutes(api)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Error("NOT_FOUND", "route not found"))
	})

	return router
}
