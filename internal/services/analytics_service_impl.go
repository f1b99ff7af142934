package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classapp-admin/internal/analytics"
	"classapp-admin/internal/cache"
	"classapp-admin/internal/observability/metrics"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// Analytics Service Implementation
// ===========================================================================

// AnalyticsCacheKey prefix of the cached conversation analytics bundle.
// The full key carries the invalidation generation and the local day, so a
// bundle computed before an invalidation or before midnight is never read.
const AnalyticsCacheKey = "analytics:conversations"

// analyticsGenerationKey counter bumped by every invalidation
const analyticsGenerationKey = AnalyticsCacheKey + ":generation"

// analyticsService implements AnalyticsService
type analyticsService struct {
	repos    *repositories.Set
	cache    cache.Cache
	ttl      time.Duration
	days     int
	location *time.Location
	clock    Clock
	logger   *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService. A ttl of 0 computes
// the bundle on every call.
func NewAnalyticsService(
	repos *repositories.Set,
	c cache.Cache,
	ttl time.Duration,
	days int,
	location *time.Location,
	clock Clock,
	logger *zap.Logger,
) AnalyticsService {
	if days <= 0 {
		days = 30
	}
	if location == nil {
		location = time.UTC
	}
	return &analyticsService{
		repos:    repos,
		cache:    c,
		ttl:      ttl,
		days:     days,
		location: location,
		clock:    clock,
		logger:   logger,
	}
}

// Conversations cached bundle or a fresh computation
func (s *analyticsService) Conversations(ctx context.Context) (*AnalyticsBundle, error) {
	var key string
	if s.ttl > 0 {
		var err error
		key, err = s.cacheKey(ctx)
		if err != nil {
			metrics.ObserveAnalyticsCache("error")
			s.logger.Warn("analytics cache generation read failed", zap.Error(err))
		}
	}

	if key != "" {
		var cached AnalyticsBundle
		err := s.cache.GetJSON(ctx, key, &cached)
		switch {
		case err == nil:
			metrics.ObserveAnalyticsCache("hit")
			return &cached, nil
		case errors.Is(err, cache.ErrMiss):
			metrics.ObserveAnalyticsCache("miss")
		default:
			// a broken cache degrades to computing every time
			metrics.ObserveAnalyticsCache("error")
			s.logger.Warn("analytics cache read failed", zap.Error(err))
		}
	}

	bundle, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err := s.cache.SetJSON(ctx, key, bundle, s.ttl); err != nil {
			s.logger.Warn("analytics cache write failed", zap.Error(err))
		}
	}
	return bundle, nil
}

// Invalidate moves readers to a new generation key, failures are logged only.
// Bundles written under an older generation expire unread.
func (s *analyticsService) Invalidate(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	if _, err := s.cache.Incr(ctx, analyticsGenerationKey); err != nil {
		s.logger.Warn("analytics cache invalidation failed", zap.Error(err))
	}
}

// cacheKey key of the bundle for the current generation and local day
func (s *analyticsService) cacheKey(ctx context.Context) (string, error) {
	gen, err := s.cache.Counter(ctx, analyticsGenerationKey)
	if err != nil {
		return "", err
	}
	day := s.clock().In(s.location).Format("2006-01-02")
	return fmt.Sprintf("%s:%d:%s", AnalyticsCacheKey, gen, day), nil
}

func (s *analyticsService) compute(ctx context.Context) (*AnalyticsBundle, error) {
	start := time.Now()

	channels, err := s.repos.Channels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list channels: %w", err)
	}
	convs, err := s.repos.Conversations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list conversations: %w", err)
	}
	msgs, err := s.repos.Messages.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: list messages: %w", err)
	}

	now := s.clock()
	stats := analytics.ComputeChannelStats(channels, convs, msgs)
	bundle := &AnalyticsBundle{
		ResponseRates:  stats.ResponseRates,
		ResponseTimes:  stats.ResponseTimes,
		ChannelDetails: stats.Details,
		MessageVolume:  analytics.DailyVolume(msgs, s.days, now, s.location),
		Days:           s.days,
		GeneratedAt:    now,
	}

	metrics.ObserveAnalyticsCompute(time.Since(start))
	s.logger.Debug("analytics computed",
		zap.Int("channels", len(channels)),
		zap.Int("conversations", len(convs)),
		zap.Int("messages", len(msgs)),
	)
	return bundle, nil
}
