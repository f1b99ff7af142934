package repositories

import (
	"context"

	"classapp-admin/internal/models"
	"classapp-admin/internal/query"

	"gorm.io/gorm"
)

// ===========================================================================
// Announcement Repository GORM Implementation
// ===========================================================================

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates the GORM announcement repository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

// FindByID finds an announcement by id
func (r *announcementRepo) FindByID(ctx context.Context, id uint) (*models.Announcement, error) {
	var a models.Announcement
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translateError(err, "announcement")
	}
	return &a, nil
}

// List returns one page of filtered announcements and the filtered total
func (r *announcementRepo) List(ctx context.Context, filter query.AnnouncementFilter, page query.Page) ([]models.Announcement, int64, error) {
	announcements := []models.Announcement{}
	var total int64

	if filter.Label.MatchesNothing() {
		return announcements, 0, nil
	}

	q := r.db.WithContext(ctx).Model(&models.Announcement{})

	// Apply filters
	if filter.Search != "" {
		pattern := query.LikePattern(filter.Search)
		q = q.Where("(LOWER(title)"+likeEscaped+" OR LOWER(content)"+likeEscaped+")", pattern, pattern)
	}
	if filter.Label.Active {
		q = q.Where("id IN (?)", r.db.Model(&models.AnnouncementLabel{}).Select("announcement_id").Where("label_id = ?", filter.Label.ID))
	}

	// Count total
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page.Beyond(total) {
		return announcements, total, nil
	}

	// Get records
	if err := q.Order(orderByID).Scopes(paginate(page)).Find(&announcements).Error; err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// Create inserts the announcement and its label links in one transaction
func (r *announcementRepo) Create(ctx context.Context, announcement *models.Announcement, labelIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(announcement).Error; err != nil {
			return translateError(err, "announcement")
		}
		if len(labelIDs) == 0 {
			return nil
		}
		links := make([]models.AnnouncementLabel, 0, len(labelIDs))
		for _, id := range labelIDs {
			links = append(links, models.AnnouncementLabel{AnnouncementID: announcement.ID, LabelID: id})
		}
		return translateError(tx.Create(&links).Error, "announcement label")
	})
}

// LabelsForAnnouncements labels of each announcement ordered by label id
func (r *announcementRepo) LabelsForAnnouncements(ctx context.Context, announcementIDs []uint) (map[uint][]models.Label, error) {
	out := make(map[uint][]models.Label, len(announcementIDs))
	if len(announcementIDs) == 0 {
		return out, nil
	}

	var links []models.AnnouncementLabel
	if err := r.db.WithContext(ctx).
		Where("announcement_id IN ?", announcementIDs).
		Order("label_id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return out, nil
	}

	labelIDs := make([]uint, 0, len(links))
	for _, l := range links {
		labelIDs = append(labelIDs, l.LabelID)
	}
	var labels []models.Label
	if err := r.db.WithContext(ctx).Where("id IN ?", labelIDs).Find(&labels).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Label, len(labels))
	for _, l := range labels {
		byID[l.ID] = l
	}

	for _, l := range links {
		if label, ok := byID[l.LabelID]; ok {
			out[l.AnnouncementID] = append(out[l.AnnouncementID], label)
		}
	}
	return out, nil
}

// Totals sums read counts and recipients
func (r *announcementRepo) Totals(ctx context.Context) (int64, int64, error) {
	var row struct {
		ReadCount       int64
		TotalRecipients int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Select("COALESCE(SUM(read_count), 0) AS read_count, COALESCE(SUM(total_recipients), 0) AS total_recipients").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.ReadCount, row.TotalRecipients, nil
}

// RecordRead increments ReadCount, capped at TotalRecipients
func (r *announcementRepo) RecordRead(ctx context.Context, id uint) (*models.Announcement, error) {
	var a models.Announcement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			return translateError(err, "announcement")
		}
		if err := tx.Model(&models.Announcement{}).
			Where("id = ? AND read_count < total_recipients", id).
			UpdateColumn("read_count", gorm.Expr("read_count + 1")).Error; err != nil {
			return err
		}
		return tx.First(&a, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}
