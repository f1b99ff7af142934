package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classapp-admin/internal/cache"
	"classapp-admin/internal/config"
	"classapp-admin/internal/database"
	"classapp-admin/internal/handlers"
	"classapp-admin/internal/realtime"
	"classapp-admin/internal/repositories"
	"classapp-admin/internal/repositories/memory"
	"classapp-admin/internal/seed"
	"classapp-admin/internal/server"
	"classapp-admin/internal/services"
	"classapp-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// =========================================================================
	// Load configuration
	// =========================================================================
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Logger
	// =========================================================================
	log, err := logger.NewLoggerWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
		zap.String("storage", cfg.Storage.Driver),
	)

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("invalid timezone", zap.String("timezone", cfg.App.Timezone), zap.Error(err))
	}

	// =========================================================================
	// Storage backend
	// =========================================================================
	var (
		repos *repositories.Set
		ping  func(ctx context.Context) error
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		var db *gorm.DB
		db, err = database.NewConnection(&cfg.Database, log)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer database.Close(db)

		// Auto migrate in development mode
		if cfg.App.IsDevelopment() {
			if err := database.AutoMigrate(db); err != nil {
				log.Warn("auto migrate failed", zap.Error(err))
			} else {
				log.Info("database auto migration completed")
			}
		}

		repos = repositories.NewGormSet(db)
		ping = func(ctx context.Context) error { return database.Ping(ctx, db) }

	default:
		repos = memory.NewSet()
		if cfg.Storage.Seed {
			if _, err := seed.Run(context.Background(), repos, time.Now().UTC(), log); err != nil {
				log.Fatal("failed to seed memory store", zap.Error(err))
			}
		}
	}

	log.Info("repositories initialized")

	// =========================================================================
	// Analytics cache (Redis)
	// =========================================================================
	var analyticsCache cache.Cache = cache.NewNoop()
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := cache.NewRedisFromURL(ctx, cfg.Redis.URL, cfg.App.Name+":")
		cancel()
		if err != nil {
			log.Warn("redis unavailable, analytics cache disabled", zap.Error(err))
		} else {
			analyticsCache = redisCache
			defer redisCache.Close()
			log.Info("redis cache initialized", zap.Duration("analytics_ttl", cfg.Cache.AnalyticsTTL))
		}
	}

	// =========================================================================
	// Realtime Publisher (Centrifugo)
	// =========================================================================
	var publisher realtime.Publisher
	if cfg.Centrifugo.Enabled() {
		publisher = realtime.NewCentrifugoClient(cfg.Centrifugo.URL, cfg.Centrifugo.APIKey, log)
		log.Info("centrifugo publisher initialized", zap.String("url", cfg.Centrifugo.URL))
	} else {
		publisher = realtime.NewNoopPublisher()
		log.Warn("centrifugo not configured, using noop publisher")
	}

	// =========================================================================
	// Services
	// =========================================================================
	svc := services.New(services.Deps{
		Repos:           repos,
		Cache:           analyticsCache,
		Publisher:       publisher,
		Logger:          log,
		Clock:           services.SystemClock,
		Location:        location,
		VolumeDays:      cfg.Analytics.VolumeDays,
		AnalyticsTTL:    cfg.Cache.AnalyticsTTL,
		CurrentUsername: cfg.App.CurrentUsername,
	})

	log.Info("services initialized")

	// =========================================================================
	// Gin Router
	// =========================================================================
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	router := server.NewRouter(server.Options{
		Services: svc,
		Paging: handlers.Paging{
			DefaultLimit: cfg.Pagination.DefaultLimit,
			MaxLimit:     cfg.Pagination.MaxLimit,
		},
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MetricsPath:    metricsPath,
		Storage:        cfg.Storage.Driver,
		Ping:           ping,
	})

	// =========================================================================
	// HTTP Server
	// =========================================================================
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// =========================================================================
	// Graceful Shutdown
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
