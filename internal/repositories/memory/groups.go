package memory

import (
	"context"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
)

type groupRepo struct {
	s *Store
}

// List every group in id order
func (r *groupRepo) List(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	err := r.s.read(ctx, func() error {
		out = append([]models.Group{}, r.s.groups...)
		return nil
	})
	return out, err
}

// FindByID finds a group by id
func (r *groupRepo) FindByID(ctx context.Context, id uint) (*models.Group, error) {
	var out *models.Group
	err := r.s.read(ctx, func() error {
		for _, g := range r.s.groups {
			if g.ID == id {
				g := g
				out = &g
				return nil
			}
		}
		return apperrors.NotFound("group")
	})
	return out, err
}

// Create inserts a group
func (r *groupRepo) Create(ctx context.Context, group *models.Group) error {
	return r.s.write(ctx, func() error {
		if group.Visibility == "" {
			group.Visibility = models.VisibilityPublic
		}
		group.ID = r.s.nextID("groups")
		r.s.stamp(&group.CreatedAt)
		r.s.groups = append(r.s.groups, *group)
		return nil
	})
}

// AddMember inserts a membership
func (r *groupRepo) AddMember(ctx context.Context, member *models.UserGroup) error {
	return r.s.write(ctx, func() error {
		for _, ug := range r.s.userGroups {
			if ug.UserID == member.UserID && ug.GroupID == member.GroupID {
				return apperrors.Duplicate("group member")
			}
		}
		member.ID = r.s.nextID("user_groups")
		r.s.userGroups = append(r.s.userGroups, *member)
		return nil
	})
}

// GroupsForUsers groups of each user ordered by group id
func (r *groupRepo) GroupsForUsers(ctx context.Context, userIDs []uint) (map[uint][]models.Group, error) {
	out := make(map[uint][]models.Group, len(userIDs))
	err := r.s.read(ctx, func() error {
		wanted := idSet(userIDs)
		// groups are kept in id order, so walking them first keeps each user's list sorted
		for _, g := range r.s.groups {
			for _, ug := range r.s.userGroups {
				if ug.GroupID != g.ID {
					continue
				}
				if _, ok := wanted[ug.UserID]; ok {
					out[ug.UserID] = append(out[ug.UserID], g)
				}
			}
		}
		return nil
	})
	return out, err
}

// MemberCounts number of members per group
func (r *groupRepo) MemberCounts(ctx context.Context) (map[uint]int64, error) {
	out := make(map[uint]int64)
	err := r.s.read(ctx, func() error {
		for _, ug := range r.s.userGroups {
			out[ug.GroupID]++
		}
		return nil
	})
	return out, err
}
