package repositories

import (
	"context"

	"classapp-admin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================================================================
// Settings Repository GORM Implementation
// Singletons live at models.SingletonID. First access inserts the defaults
// with INSERT ... ON CONFLICT DO NOTHING so concurrent first reads create
// exactly one row.
// ===========================================================================

type settingsRepo struct {
	db *gorm.DB
}

// NewSettingsRepository creates the GORM settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// GetOrCreateOrganization returns the organization settings, inserting defaults if absent
func (r *settingsRepo) GetOrCreateOrganization(ctx context.Context, defaults *models.OrganizationSettings) (*models.OrganizationSettings, bool, error) {
	var out models.OrganizationSettings
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = ensureSingleton(tx, defaults)
		if err != nil {
			return err
		}
		return tx.First(&out, models.SingletonID).Error
	})
	if err != nil {
		return nil, false, translateError(err, "organization settings")
	}
	return &out, created, nil
}

// UpdateOrganization merges apply into the organization settings
func (r *settingsRepo) UpdateOrganization(ctx context.Context, defaults *models.OrganizationSettings, apply func(*models.OrganizationSettings)) (*models.OrganizationSettings, bool, error) {
	var out models.OrganizationSettings
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = ensureSingleton(tx, defaults)
		if err != nil {
			return err
		}
		if err := lockForUpdate(tx).First(&out, models.SingletonID).Error; err != nil {
			return err
		}
		apply(&out)
		out.ID = models.SingletonID
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, false, translateError(err, "organization settings")
	}
	return &out, created, nil
}

// GetOrCreateKpi returns the dashboard KPIs, inserting defaults if absent
func (r *settingsRepo) GetOrCreateKpi(ctx context.Context, defaults *models.DashboardKpi) (*models.DashboardKpi, bool, error) {
	var out models.DashboardKpi
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = ensureSingleton(tx, defaults)
		if err != nil {
			return err
		}
		return tx.First(&out, models.SingletonID).Error
	})
	if err != nil {
		return nil, false, translateError(err, "dashboard kpi")
	}
	return &out, created, nil
}

// UpdateKpi merges apply into the dashboard KPIs
func (r *settingsRepo) UpdateKpi(ctx context.Context, defaults *models.DashboardKpi, apply func(*models.DashboardKpi)) (*models.DashboardKpi, bool, error) {
	var out models.DashboardKpi
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = ensureSingleton(tx, defaults)
		if err != nil {
			return err
		}
		if err := lockForUpdate(tx).First(&out, models.SingletonID).Error; err != nil {
			return err
		}
		apply(&out)
		out.ID = models.SingletonID
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, false, translateError(err, "dashboard kpi")
	}
	return &out, created, nil
}

// ensureSingleton inserts record unless a row with its key exists.
// Returns true when this call inserted it.
func ensureSingleton(tx *gorm.DB, record interface{}) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect has it.
// SQLite serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
