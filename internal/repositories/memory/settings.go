package memory

import (
	"context"

	"classapp-admin/internal/models"
)

// settingsRepo keeps the singletons as pointers on the store. The first
// caller to find one missing installs the defaults under the write lock.
type settingsRepo struct {
	s *Store
}

// GetOrCreateOrganization returns the organization settings, inserting defaults if absent
func (r *settingsRepo) GetOrCreateOrganization(ctx context.Context, defaults *models.OrganizationSettings) (*models.OrganizationSettings, bool, error) {
	var out models.OrganizationSettings
	var created bool
	err := r.s.write(ctx, func() error {
		created = r.s.ensureOrganization(defaults)
		out = *r.s.organization
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// UpdateOrganization merges apply into the organization settings
func (r *settingsRepo) UpdateOrganization(ctx context.Context, defaults *models.OrganizationSettings, apply func(*models.OrganizationSettings)) (*models.OrganizationSettings, bool, error) {
	var out models.OrganizationSettings
	var created bool
	err := r.s.write(ctx, func() error {
		created = r.s.ensureOrganization(defaults)
		merged := *r.s.organization
		apply(&merged)
		merged.ID = models.SingletonID
		r.s.organization = &merged
		out = merged
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// GetOrCreateKpi returns the dashboard KPIs, inserting defaults if absent
func (r *settingsRepo) GetOrCreateKpi(ctx context.Context, defaults *models.DashboardKpi) (*models.DashboardKpi, bool, error) {
	var out models.DashboardKpi
	var created bool
	err := r.s.write(ctx, func() error {
		created = r.s.ensureKpi(defaults)
		out = *r.s.kpi
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// UpdateKpi merges apply into the dashboard KPIs
func (r *settingsRepo) UpdateKpi(ctx context.Context, defaults *models.DashboardKpi, apply func(*models.DashboardKpi)) (*models.DashboardKpi, bool, error) {
	var out models.DashboardKpi
	var created bool
	err := r.s.write(ctx, func() error {
		created = r.s.ensureKpi(defaults)
		merged := *r.s.kpi
		apply(&merged)
		merged.ID = models.SingletonID
		r.s.kpi = &merged
		out = merged
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// ensureOrganization installs defaults if absent, write lock held
func (s *Store) ensureOrganization(defaults *models.OrganizationSettings) bool {
	if s.organization != nil {
		return false
	}
	rec := *defaults
	rec.ID = models.SingletonID
	s.organization = &rec
	return true
}

// ensureKpi installs defaults if absent, write lock held
func (s *Store) ensureKpi(defaults *models.DashboardKpi) bool {
	if s.kpi != nil {
		return false
	}
	rec := *defaults
	rec.ID = models.SingletonID
	s.kpi = &rec
	return true
}
