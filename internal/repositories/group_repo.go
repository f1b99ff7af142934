package repositories

import (
	"context"

	"classapp-admin/internal/models"

	"gorm.io/gorm"
)

// ===========================================================================
// Group Repository GORM Implementation
// ===========================================================================

type groupRepo struct {
	db *gorm.DB
}

// NewGroupRepository creates the GORM group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepo{db: db}
}

// List every group in id order
func (r *groupRepo) List(ctx context.Context) ([]models.Group, error) {
	groups := []models.Group{}
	err := r.db.WithContext(ctx).Order(orderByID).Find(&groups).Error
	return groups, err
}

// FindByID finds a group by id
func (r *groupRepo) FindByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, translateError(err, "group")
	}
	return &group, nil
}

// Create inserts a group
func (r *groupRepo) Create(ctx context.Context, group *models.Group) error {
	return translateError(r.db.WithContext(ctx).Create(group).Error, "group")
}

// AddMember inserts a membership
func (r *groupRepo) AddMember(ctx context.Context, member *models.UserGroup) error {
	return translateError(r.db.WithContext(ctx).Create(member).Error, "group member")
}

// GroupsForUsers groups of each user ordered by group id
func (r *groupRepo) GroupsForUsers(ctx context.Context, userIDs []uint) (map[uint][]models.Group, error) {
	out := make(map[uint][]models.Group, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var links []models.UserGroup
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("group_id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return out, nil
	}

	groupIDs := make([]uint, 0, len(links))
	for _, l := range links {
		groupIDs = append(groupIDs, l.GroupID)
	}
	var groups []models.Group
	if err := r.db.WithContext(ctx).Where("id IN ?", groupIDs).Find(&groups).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	for _, l := range links {
		if g, ok := byID[l.GroupID]; ok {
			out[l.UserID] = append(out[l.UserID], g)
		}
	}
	return out, nil
}

// MemberCounts number of members per group
func (r *groupRepo) MemberCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []countRow
	err := r.db.WithContext(ctx).
		Model(&models.UserGroup{}).
		Select("group_id AS ref_id, COUNT(*) AS total").
		Group("group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsToMap(rows), nil
}
