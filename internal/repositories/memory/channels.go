package memory

import (
	"context"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
)

type channelRepo struct {
	s *Store
}

// List every channel in id order
func (r *channelRepo) List(ctx context.Context) ([]models.Channel, error) {
	var out []models.Channel
	err := r.s.read(ctx, func() error {
		out = append([]models.Channel{}, r.s.channels...)
		return nil
	})
	return out, err
}

// FindByID finds a channel by id
func (r *channelRepo) FindByID(ctx context.Context, id uint) (*models.Channel, error) {
	var out *models.Channel
	err := r.s.read(ctx, func() error {
		c, ok := r.s.channel(id)
		if !ok {
			return apperrors.NotFound("channel")
		}
		out = &c
		return nil
	})
	return out, err
}

// FindByIDs returns the existing channels among ids
func (r *channelRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]models.Channel, error) {
	out := make(map[uint]models.Channel, len(ids))
	err := r.s.read(ctx, func() error {
		wanted := idSet(ids)
		for _, c := range r.s.channels {
			if _, ok := wanted[c.ID]; ok {
				out[c.ID] = c
			}
		}
		return nil
	})
	return out, err
}

// Create inserts a channel
func (r *channelRepo) Create(ctx context.Context, channel *models.Channel) error {
	return r.s.write(ctx, func() error {
		if channel.Status == "" {
			channel.Status = models.ChannelStatusActive
		}
		channel.ID = r.s.nextID("channels")
		r.s.stamp(&channel.CreatedAt)
		r.s.channels = append(r.s.channels, *channel)
		return nil
	})
}

// AddUser attaches a user to a channel
func (r *channelRepo) AddUser(ctx context.Context, member *models.ChannelUser) error {
	return r.s.write(ctx, func() error {
		for _, cu := range r.s.channelUsers {
			if cu.ChannelID == member.ChannelID && cu.UserID == member.UserID {
				return apperrors.Duplicate("channel user")
			}
		}
		member.ID = r.s.nextID("channel_users")
		r.s.channelUsers = append(r.s.channelUsers, *member)
		return nil
	})
}

// UserCounts number of attached users per channel
func (r *channelRepo) UserCounts(ctx context.Context) (map[uint]int64, error) {
	out := make(map[uint]int64)
	err := r.s.read(ctx, func() error {
		for _, cu := range r.s.channelUsers {
			out[cu.ChannelID]++
		}
		return nil
	})
	return out, err
}

// channel lookup, lock held
func (s *Store) channel(id uint) (models.Channel, bool) {
	for _, c := range s.channels {
		if c.ID == id {
			return c, true
		}
	}
	return models.Channel{}, false
}
