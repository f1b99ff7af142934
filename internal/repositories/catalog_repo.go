package repositories

import (
	"context"

	"classapp-admin/internal/models"

	"gorm.io/gorm"
)

// ===========================================================================
// Label and QuickLink Repositories GORM Implementation
// Plain lists, no filters
// ===========================================================================

type labelRepo struct {
	db *gorm.DB
}

// NewLabelRepository creates the GORM label repository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepo{db: db}
}

// List every label in id order
func (r *labelRepo) List(ctx context.Context) ([]models.Label, error) {
	labels := []models.Label{}
	err := r.db.WithContext(ctx).Order(orderByID).Find(&labels).Error
	return labels, err
}

// FindByID finds a label by id
func (r *labelRepo) FindByID(ctx context.Context, id uint) (*models.Label, error) {
	var label models.Label
	if err := r.db.WithContext(ctx).First(&label, id).Error; err != nil {
		return nil, translateError(err, "label")
	}
	return &label, nil
}

// Create inserts a label
func (r *labelRepo) Create(ctx context.Context, label *models.Label) error {
	return translateError(r.db.WithContext(ctx).Create(label).Error, "label")
}

type quickLinkRepo struct {
	db *gorm.DB
}

// NewQuickLinkRepository creates the GORM quick link repository
func NewQuickLinkRepository(db *gorm.DB) QuickLinkRepository {
	return &quickLinkRepo{db: db}
}

// List every quick link in id order
func (r *quickLinkRepo) List(ctx context.Context) ([]models.QuickLink, error) {
	links := []models.QuickLink{}
	err := r.db.WithContext(ctx).Order(orderByID).Find(&links).Error
	return links, err
}

// Create inserts a quick link
func (r *quickLinkRepo) Create(ctx context.Context, link *models.QuickLink) error {
	return translateError(r.db.WithContext(ctx).Create(link).Error, "quick link")
}
