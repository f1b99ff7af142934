package services

import (
	"context"
	"fmt"

	"classapp-admin/internal/analytics"
	"classapp-admin/internal/models"
	"classapp-admin/internal/observability/metrics"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// Settings Service Implementation
// ===========================================================================

const (
	recordOrganization = "organization_settings"
	recordKpi          = "dashboard_kpi"
)

// settingsService implements SettingsService
type settingsService struct {
	repos  *repositories.Set
	clock  Clock
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repos *repositories.Set, clock Clock, logger *zap.Logger) SettingsService {
	return &settingsService{
		repos:  repos,
		clock:  clock,
		logger: logger,
	}
}

func (s *settingsService) Organization(ctx context.Context) (*models.OrganizationSettings, error) {
	settings, created, err := s.repos.Settings.GetOrCreateOrganization(ctx, models.DefaultOrganizationSettings(s.clock()))
	if err != nil {
		return nil, fmt.Errorf("get organization settings: %w", err)
	}
	s.defaultCreated(recordOrganization, created)
	return settings, nil
}

func (s *settingsService) UpdateOrganization(ctx context.Context, patch *models.OrganizationSettingsPatch) (*models.OrganizationSettings, error) {
	now := s.clock()
	settings, created, err := s.repos.Settings.UpdateOrganization(ctx, models.DefaultOrganizationSettings(now), func(o *models.OrganizationSettings) {
		patch.Apply(o)
		o.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("update organization settings: %w", err)
	}
	s.defaultCreated(recordOrganization, created)

	s.logger.Info("organization settings updated", zap.String("name", settings.Name))
	return settings, nil
}

func (s *settingsService) Kpi(ctx context.Context) (*models.DashboardKpi, error) {
	kpi, created, err := s.repos.Settings.GetOrCreateKpi(ctx, models.DefaultDashboardKpi(s.clock()))
	if err != nil {
		return nil, fmt.Errorf("get dashboard kpis: %w", err)
	}
	s.defaultCreated(recordKpi, created)
	return kpi, nil
}

func (s *settingsService) UpdateKpi(ctx context.Context, patch *models.DashboardKpiPatch) (*models.DashboardKpi, error) {
	now := s.clock()
	kpi, created, err := s.repos.Settings.UpdateKpi(ctx, models.DefaultDashboardKpi(now), func(k *models.DashboardKpi) {
		patch.Apply(k)
		k.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("update dashboard kpis: %w", err)
	}
	s.defaultCreated(recordKpi, created)
	return kpi, nil
}

func (s *settingsService) RefreshKpi(ctx context.Context) (*models.DashboardKpi, error) {
	fresh, err := s.measure(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	kpi, created, err := s.repos.Settings.UpdateKpi(ctx, models.DefaultDashboardKpi(now), func(k *models.DashboardKpi) {
		k.ReadRateChange = analytics.Round1(fresh.ReadRate - k.ReadRate)
		k.AdoptionRateChange = analytics.Round1(fresh.AdoptionRate - k.AdoptionRate)
		k.CsatScoreChange = analytics.Round1(fresh.CsatScore - k.CsatScore)

		k.ReadRate = fresh.ReadRate
		k.AdoptionRate = fresh.AdoptionRate
		k.AdoptionTotal = fresh.AdoptionTotal
		k.AdoptionRegistered = fresh.AdoptionRegistered
		k.CsatScore = fresh.CsatScore
		k.UpdatedAt = now
	})
	if err != nil {
		return nil, fmt.Errorf("refresh dashboard kpis: %w", err)
	}
	s.defaultCreated(recordKpi, created)

	s.logger.Info("dashboard kpis refreshed",
		zap.Float64("read_rate", kpi.ReadRate),
		zap.Float64("adoption_rate", kpi.AdoptionRate),
		zap.Float64("csat_score", kpi.CsatScore),
	)
	return kpi, nil
}

// measure computes the current KPI values from stored records
func (s *settingsService) measure(ctx context.Context) (*models.DashboardKpi, error) {
	read, recipients, err := s.repos.Announcements.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("announcement totals: %w", err)
	}
	total, err := s.repos.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	registered, err := s.repos.Users.CountByStatus(ctx, models.UserStatusCadastrado)
	if err != nil {
		return nil, fmt.Errorf("count registered users: %w", err)
	}
	channels, err := s.repos.Channels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}

	kpi := &models.DashboardKpi{
		ReadRate:           percent(read, recipients),
		AdoptionRate:       percent(registered, total),
		AdoptionTotal:      int(total),
		AdoptionRegistered: int(registered),
	}

	var csatSum float64
	var scored int
	for _, c := range channels {
		if c.CsatScore != nil {
			csatSum += *c.CsatScore
			scored++
		}
	}
	if scored > 0 {
		kpi.CsatScore = analytics.Round1(csatSum / float64(scored))
	}
	return kpi, nil
}

func (s *settingsService) defaultCreated(record string, created bool) {
	if !created {
		return
	}
	metrics.ObserveSingletonDefault(record)
	s.logger.Info("singleton created from defaults", zap.String("record", record))
}

// percent part/whole*100 rounded to one decimal, 0 for an empty whole
func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return analytics.Round1(float64(part) / float64(whole) * 100)
}
