package services

import (
	"context"

	"classapp-admin/internal/models"
)

// ===========================================================================
// Settings Service Interface
// Accessors for the two singleton records. Reads create the defaults on
// first access
// ===========================================================================

// SettingsService interface for organization settings and dashboard KPIs
type SettingsService interface {
	// Organization the settings record, created from defaults if absent
	Organization(ctx context.Context) (*models.OrganizationSettings, error)

	// UpdateOrganization merges the present patch fields into the record
	UpdateOrganization(ctx context.Context, patch *models.OrganizationSettingsPatch) (*models.OrganizationSettings, error)

	// Kpi the KPI record, created zeroed if absent
	Kpi(ctx context.Context) (*models.DashboardKpi, error)

	// UpdateKpi merges the present patch fields into the record
	UpdateKpi(ctx context.Context, patch *models.DashboardKpiPatch) (*models.DashboardKpi, error)

	// RefreshKpi recomputes the KPIs from stored announcements, users and
	// channels. Each *Change field is the difference to the previous value
	RefreshKpi(ctx context.Context) (*models.DashboardKpi, error)
}
