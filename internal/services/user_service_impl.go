package services

import (
	"context"
	"fmt"

	"classapp-admin/internal/dto"
	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// User Service Implementation
// ===========================================================================

// userService implements UserService
type userService struct {
	repos           *repositories.Set
	currentUsername string
	logger          *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(repos *repositories.Set, currentUsername string, logger *zap.Logger) UserService {
	return &userService{
		repos:           repos,
		currentUsername: currentUsername,
		logger:          logger,
	}
}

// List one page of users with groups
func (s *userService) List(ctx context.Context, filter query.UserFilter, page query.Page) (*UserPage, error) {
	users, total, err := s.repos.Users.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	views, err := s.withGroups(ctx, users)
	if err != nil {
		return nil, err
	}

	return &UserPage{Users: views, Total: total}, nil
}

// Get one user with groups
func (s *userService) Get(ctx context.Context, id uint) (*UserView, error) {
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.single(ctx, user)
}

// Current the configured dashboard user
func (s *userService) Current(ctx context.Context) (*UserView, error) {
	user, err := s.repos.Users.FindByUsername(ctx, s.currentUsername)
	if err != nil {
		return nil, err
	}
	return s.single(ctx, user)
}

// Create inserts the user and its memberships
func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*UserView, error) {
	groupIDs := uniqueIDs(req.GroupIDs)

	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Profile:  req.Profile,
		Status:   req.Status,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, "hash password")
	}

	if err := s.repos.Users.Create(ctx, user, groupIDs); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Int("groups", len(groupIDs)),
	)

	return s.single(ctx, user)
}

func (s *userService) single(ctx context.Context, user *models.User) (*UserView, error) {
	views, err := s.withGroups(ctx, []models.User{*user})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// withGroups joins each user with its UserGroup rows
func (s *userService) withGroups(ctx context.Context, users []models.User) ([]UserView, error) {
	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	groups, err := s.repos.Groups.GroupsForUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load user groups: %w", err)
	}

	views := make([]UserView, len(users))
	for i, u := range users {
		g := groups[u.ID]
		if g == nil {
			g = []models.Group{}
		}
		views[i] = UserView{User: u, Groups: g}
	}
	return views, nil
}

// uniqueIDs drops repeated ids keeping first occurrence order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
