package repositories

import (
	"context"

	"classapp-admin/internal/models"

	"gorm.io/gorm"
)

// ===========================================================================
// Channel Repository GORM Implementation
// ===========================================================================

type channelRepo struct {
	db *gorm.DB
}

// NewChannelRepository creates the GORM channel repository
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepo{db: db}
}

// List every channel in id order
func (r *channelRepo) List(ctx context.Context) ([]models.Channel, error) {
	channels := []models.Channel{}
	err := r.db.WithContext(ctx).Order(orderByID).Find(&channels).Error
	return channels, err
}

// FindByID finds a channel by id
func (r *channelRepo) FindByID(ctx context.Context, id uint) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.WithContext(ctx).First(&channel, id).Error; err != nil {
		return nil, translateError(err, "channel")
	}
	return &channel, nil
}

// FindByIDs returns the existing channels among ids
func (r *channelRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]models.Channel, error) {
	out := make(map[uint]models.Channel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var channels []models.Channel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&channels).Error; err != nil {
		return nil, err
	}
	for _, c := range channels {
		out[c.ID] = c
	}
	return out, nil
}

// Create inserts a channel
func (r *channelRepo) Create(ctx context.Context, channel *models.Channel) error {
	return translateError(r.db.WithContext(ctx).Create(channel).Error, "channel")
}

// AddUser attaches a user to a channel
func (r *channelRepo) AddUser(ctx context.Context, member *models.ChannelUser) error {
	return translateError(r.db.WithContext(ctx).Create(member).Error, "channel user")
}

// UserCounts number of attached users per channel
func (r *channelRepo) UserCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []countRow
	err := r.db.WithContext(ctx).
		Model(&models.ChannelUser{}).
		Select("channel_id AS ref_id, COUNT(*) AS total").
		Group("channel_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsToMap(rows), nil
}
