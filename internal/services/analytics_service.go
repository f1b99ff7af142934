package services

import (
	"context"
	"time"

	"classapp-admin/internal/analytics"
)

// ===========================================================================
// Analytics Service Interface
// ===========================================================================

// AnalyticsBundle response of GET /api/analytics/conversations
type AnalyticsBundle struct {
	ResponseRates  []analytics.ResponseRate  `json:"responseRates"`
	ResponseTimes  []analytics.ResponseTime  `json:"responseTimes"`
	ChannelDetails []analytics.ChannelDetail `json:"channelDetails"`
	MessageVolume  []analytics.VolumePoint   `json:"messageVolume"`
	Days           int                       `json:"days"`
	GeneratedAt    time.Time                 `json:"generatedAt"`
}

// AnalyticsService interface for conversation analytics
type AnalyticsService interface {
	// Conversations per channel statistics and daily message volume,
	// served from cache when fresh
	Conversations(ctx context.Context) (*AnalyticsBundle, error)

	// Invalidate makes the next read recompute the bundle
	Invalidate(ctx context.Context)
}
