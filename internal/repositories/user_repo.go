package repositories

import (
	"context"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"

	"gorm.io/gorm"
)

// ===========================================================================
// User Repository GORM Implementation
// (interface defined in interfaces.go)
// ===========================================================================

// userRepo implementation
type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates the GORM user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// FindByID finds a user by id
func (r *userRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *userRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return &user, nil
}

// FindByIDs returns the existing users among ids
func (r *userRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]models.User, error) {
	out := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// List returns one page of filtered users and the filtered total
func (r *userRepo) List(ctx context.Context, filter query.UserFilter, page query.Page) ([]models.User, int64, error) {
	users := []models.User{}
	var total int64

	if filter.Group.MatchesNothing() {
		return users, 0, nil
	}

	q := r.db.WithContext(ctx).Model(&models.User{})

	// Apply filters
	if filter.Search != "" {
		pattern := query.LikePattern(filter.Search)
		q = q.Where(
			"(LOWER(username)"+likeEscaped+" OR LOWER(full_name)"+likeEscaped+" OR LOWER(email)"+likeEscaped+")",
			pattern, pattern, pattern,
		)
	}
	if filter.Profile != "" {
		q = q.Where("profile = ?", filter.Profile)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Group.Active {
		q = q.Where("id IN (?)", r.db.Model(&models.UserGroup{}).Select("user_id").Where("group_id = ?", filter.Group.ID))
	}

	// Count total
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page.Beyond(total) {
		return users, total, nil
	}

	// Get records
	if err := q.Order(orderByID).Scopes(paginate(page)).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Create inserts a user and its group memberships in one transaction
func (r *userRepo) Create(ctx context.Context, user *models.User, groupIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(groupIDs) > 0 {
			var found int64
			if err := tx.Model(&models.Group{}).Where("id IN ?", groupIDs).Count(&found).Error; err != nil {
				return err
			}
			if found != int64(len(groupIDs)) {
				return apperrors.NotFound("group")
			}
		}

		if err := tx.Create(user).Error; err != nil {
			return translateError(err, "user")
		}

		for _, groupID := range groupIDs {
			member := &models.UserGroup{UserID: user.ID, GroupID: groupID}
			if err := tx.Create(member).Error; err != nil {
				return translateError(err, "group member")
			}
		}
		return nil
	})
}

// Count number of users
func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, err
}

// CountByStatus number of users with status
func (r *userRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
