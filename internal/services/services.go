package services

import (
	"context"
	"time"

	"classapp-admin/internal/cache"
	"classapp-admin/internal/realtime"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// Services
// Stateless business logic over one repositories.Set. Safe for concurrent use
// ===========================================================================

// Clock returns the current time, replaced in tests
type Clock func() time.Time

// SystemClock wall clock in UTC
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Deps everything the services need
type Deps struct {
	Repos     *repositories.Set
	Cache     cache.Cache
	Publisher realtime.Publisher
	Logger    *zap.Logger
	Clock     Clock

	// Location calendar used for daily message volume
	Location *time.Location

	// VolumeDays length of the daily message volume series
	VolumeDays int

	// AnalyticsTTL lifetime of the cached analytics bundle, 0 disables caching
	AnalyticsTTL time.Duration

	// CurrentUsername user returned by GET /api/me
	CurrentUsername string
}

// Services every service, wired on the same Deps
type Services struct {
	Users         UserService
	Catalog       CatalogService
	Conversations ConversationService
	Announcements AnnouncementService
	Analytics     AnalyticsService
	Settings      SettingsService
}

// New wires every service. Missing optional deps get no-op defaults.
func New(d Deps) *Services {
	if d.Cache == nil {
		d.Cache = cache.NewNoop()
	}
	if d.Publisher == nil {
		d.Publisher = realtime.NewNoopPublisher()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = SystemClock
	}
	if d.Location == nil {
		d.Location = time.UTC
	}

	analytics := NewAnalyticsService(d.Repos, d.Cache, d.AnalyticsTTL, d.VolumeDays, d.Location, d.Clock, d.Logger)

	return &Services{
		Users:         NewUserService(d.Repos, d.CurrentUsername, d.Logger),
		Catalog:       NewCatalogService(d.Repos, analytics, d.Logger),
		Conversations: NewConversationService(d.Repos, analytics, d.Publisher, d.Clock, d.Logger),
		Announcements: NewAnnouncementService(d.Repos, d.Publisher, d.Logger),
		Analytics:     analytics,
		Settings:      NewSettingsService(d.Repos, d.Clock, d.Logger),
	}
}

// publishAsync runs publish in the background with its own deadline.
// The request context may end before the publish does.
func publishAsync(ctx context.Context, logger *zap.Logger, what string, publish func(ctx context.Context) error) {
	bg := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(bg, 5*time.Second)
		defer cancel()
		if err := publish(ctx); err != nil {
			logger.Warn("failed to publish realtime event", zap.String("event", what), zap.Error(err))
		}
	}()
}
