package memory

import (
	"context"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
)

type userRepo struct {
	s *Store
}

// FindByID finds a user by id
func (r *userRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var out *models.User
	err := r.s.read(ctx, func() error {
		u, ok := r.s.user(id)
		if !ok {
			return apperrors.NotFound("user")
		}
		out = &u
		return nil
	})
	return out, err
}

// FindByUsername finds a user by username
func (r *userRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var out *models.User
	err := r.s.read(ctx, func() error {
		for _, u := range r.s.users {
			if u.Username == username {
				u := u
				out = &u
				return nil
			}
		}
		return apperrors.NotFound("user")
	})
	return out, err
}

// FindByIDs returns the existing users among ids
func (r *userRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]models.User, error) {
	out := make(map[uint]models.User, len(ids))
	err := r.s.read(ctx, func() error {
		wanted := idSet(ids)
		for _, u := range r.s.users {
			if _, ok := wanted[u.ID]; ok {
				out[u.ID] = u
			}
		}
		return nil
	})
	return out, err
}

// List returns one page of filtered users and the filtered total
func (r *userRepo) List(ctx context.Context, filter query.UserFilter, page query.Page) ([]models.User, int64, error) {
	var matched []models.User
	err := r.s.read(ctx, func() error {
		if filter.Group.MatchesNothing() {
			return nil
		}
		var members map[uint]struct{}
		if filter.Group.Active {
			members = make(map[uint]struct{})
			for _, ug := range r.s.userGroups {
				if ug.GroupID == filter.Group.ID {
					members[ug.UserID] = struct{}{}
				}
			}
		}
		for _, u := range r.s.users {
			if filter.Search != "" &&
				!query.ContainsFold(u.Username, filter.Search) &&
				!query.ContainsFold(u.FullName, filter.Search) &&
				!query.ContainsFold(u.Email, filter.Search) {
				continue
			}
			if filter.Profile != "" && u.Profile != filter.Profile {
				continue
			}
			if filter.Status != "" && u.Status != filter.Status {
				continue
			}
			if members != nil {
				if _, ok := members[u.ID]; !ok {
					continue
				}
			}
			matched = append(matched, u)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return query.Paginate(matched, page), int64(len(matched)), nil
}

// Create inserts a user and its group memberships under one lock
func (r *userRepo) Create(ctx context.Context, user *models.User, groupIDs []uint) error {
	return r.s.write(ctx, func() error {
		for _, u := range r.s.users {
			if u.Username == user.Username {
				return apperrors.Duplicate("user")
			}
		}
		known := make(map[uint]struct{}, len(r.s.groups))
		for _, g := range r.s.groups {
			known[g.ID] = struct{}{}
		}
		for _, id := range groupIDs {
			if _, ok := known[id]; !ok {
				return apperrors.NotFound("group")
			}
		}
		if user.Profile == "" {
			user.Profile = models.ProfileAluno
		}
		if user.Status == "" {
			user.Status = models.UserStatusNaoCadastrado
		}
		user.ID = r.s.nextID("users")
		r.s.stamp(&user.CreatedAt)
		r.s.users = append(r.s.users, *user)

		for _, id := range groupIDs {
			member := models.UserGroup{ID: r.s.nextID("user_groups"), UserID: user.ID, GroupID: id}
			r.s.userGroups = append(r.s.userGroups, member)
		}
		return nil
	})
}

// Count number of users
func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.read(ctx, func() error {
		n = int64(len(r.s.users))
		return nil
	})
	return n, err
}

// CountByStatus number of users with status
func (r *userRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.s.read(ctx, func() error {
		for _, u := range r.s.users {
			if u.Status == status {
				n++
			}
		}
		return nil
	})
	return n, err
}

// user lookup, lock held
func (s *Store) user(id uint) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
