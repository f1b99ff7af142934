package services

import (
	"context"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/query"
)

// ===========================================================================
// User Service Interface
// Filtered user directory with group enrichment
// ===========================================================================

// UserService interface for user operations
type UserService interface {
	// List one page of users matching filter, each with its groups
	List(ctx context.Context, filter query.UserFilter, page query.Page) (*UserPage, error)

	// Get one user with its groups
	Get(ctx context.Context, id uint) (*UserView, error)

	// Current the user the dashboard runs as
	Current(ctx context.Context) (*UserView, error)

	// Create validates the groups, hashes the password, inserts the user
	// and its memberships
	Create(ctx context.Context, req *dto.CreateUserRequest) (*UserView, error)
}
