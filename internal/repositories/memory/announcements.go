package memory

import (
	"context"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
)

type announcementRepo struct {
	s *Store
}

// FindByID finds an announcement by id
func (r *announcementRepo) FindByID(ctx context.Context, id uint) (*models.Announcement, error) {
	var out *models.Announcement
	err := r.s.read(ctx, func() error {
		i := r.s.announcementIndex(id)
		if i < 0 {
			return apperrors.NotFound("announcement")
		}
		a := r.s.announcements[i]
		out = &a
		return nil
	})
	return out, err
}

// List returns one page of filtered announcements and the filtered total
func (r *announcementRepo) List(ctx context.Context, filter query.AnnouncementFilter, page query.Page) ([]models.Announcement, int64, error) {
	var matched []models.Announcement
	err := r.s.read(ctx, func() error {
		if filter.Label.MatchesNothing() {
			return nil
		}
		var labelled map[uint]struct{}
		if filter.Label.Active {
			labelled = make(map[uint]struct{})
			for _, al := range r.s.announcementLabels {
				if al.LabelID == filter.Label.ID {
					labelled[al.AnnouncementID] = struct{}{}
				}
			}
		}
		for _, a := range r.s.announcements {
			if filter.Search != "" &&
				!query.ContainsFold(a.Title, filter.Search) &&
				!query.ContainsFold(a.Content, filter.Search) {
				continue
			}
			if labelled != nil {
				if _, ok := labelled[a.ID]; !ok {
					continue
				}
			}
			matched = append(matched, a)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return query.Paginate(matched, page), int64(len(matched)), nil
}

// Create inserts the announcement and its label links under one lock
func (r *announcementRepo) Create(ctx context.Context, announcement *models.Announcement, labelIDs []uint) error {
	return r.s.write(ctx, func() error {
		seen := make(map[uint]struct{}, len(labelIDs))
		for _, id := range labelIDs {
			if _, dup := seen[id]; dup {
				return apperrors.Duplicate("announcement label")
			}
			seen[id] = struct{}{}
		}

		announcement.ID = r.s.nextID("announcements")
		r.s.stamp(&announcement.CreatedAt)
		r.s.announcements = append(r.s.announcements, *announcement)
		for _, id := range labelIDs {
			r.s.announcementLabels = append(r.s.announcementLabels, models.AnnouncementLabel{
				ID:             r.s.nextID("announcement_labels"),
				AnnouncementID: announcement.ID,
				LabelID:        id,
			})
		}
		return nil
	})
}

// LabelsForAnnouncements labels of each announcement ordered by label id
func (r *announcementRepo) LabelsForAnnouncements(ctx context.Context, announcementIDs []uint) (map[uint][]models.Label, error) {
	out := make(map[uint][]models.Label, len(announcementIDs))
	err := r.s.read(ctx, func() error {
		wanted := idSet(announcementIDs)
		for _, l := range r.s.labels {
			for _, al := range r.s.announcementLabels {
				if al.LabelID != l.ID {
					continue
				}
				if _, ok := wanted[al.AnnouncementID]; ok {
					out[al.AnnouncementID] = append(out[al.AnnouncementID], l)
				}
			}
		}
		return nil
	})
	return out, err
}

// Totals sums read counts and recipients
func (r *announcementRepo) Totals(ctx context.Context) (int64, int64, error) {
	var read, total int64
	err := r.s.read(ctx, func() error {
		for _, a := range r.s.announcements {
			read += int64(a.ReadCount)
			total += int64(a.TotalRecipients)
		}
		return nil
	})
	return read, total, err
}

// RecordRead increments ReadCount, capped at TotalRecipients
func (r *announcementRepo) RecordRead(ctx context.Context, id uint) (*models.Announcement, error) {
	var out *models.Announcement
	err := r.s.write(ctx, func() error {
		i := r.s.announcementIndex(id)
		if i < 0 {
			return apperrors.NotFound("announcement")
		}
		a := &r.s.announcements[i]
		if a.ReadCount < a.TotalRecipients {
			a.ReadCount++
		}
		cp := *a
		out = &cp
		return nil
	})
	return out, err
}

// announcementIndex position of id in s.announcements or -1, lock held
func (s *Store) announcementIndex(id uint) int {
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			return i
		}
	}
	return -1
}
