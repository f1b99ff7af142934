package memory

import (
	"context"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
)

type labelRepo struct {
	s *Store
}

// List every label in id order
func (r *labelRepo) List(ctx context.Context) ([]models.Label, error) {
	var out []models.Label
	err := r.s.read(ctx, func() error {
		out = append([]models.Label{}, r.s.labels...)
		return nil
	})
	return out, err
}

// FindByID finds a label by id
func (r *labelRepo) FindByID(ctx context.Context, id uint) (*models.Label, error) {
	var out *models.Label
	err := r.s.read(ctx, func() error {
		for _, l := range r.s.labels {
			if l.ID == id {
				l := l
				out = &l
				return nil
			}
		}
		return apperrors.NotFound("label")
	})
	return out, err
}

// Create inserts a label
func (r *labelRepo) Create(ctx context.Context, label *models.Label) error {
	return r.s.write(ctx, func() error {
		label.ID = r.s.nextID("labels")
		r.s.stamp(&label.CreatedAt)
		r.s.labels = append(r.s.labels, *label)
		return nil
	})
}

type quickLinkRepo struct {
	s *Store
}

// List every quick link in id order
func (r *quickLinkRepo) List(ctx context.Context) ([]models.QuickLink, error) {
	var out []models.QuickLink
	err := r.s.read(ctx, func() error {
		out = append([]models.QuickLink{}, r.s.quickLinks...)
		return nil
	})
	return out, err
}

// Create inserts a quick link
func (r *quickLinkRepo) Create(ctx context.Context, link *models.QuickLink) error {
	return r.s.write(ctx, func() error {
		link.ID = r.s.nextID("quick_links")
		r.s.stamp(&link.CreatedAt)
		r.s.quickLinks = append(r.s.quickLinks, *link)
		return nil
	})
}
