package services

import (
	"context"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/models"
)

// ===========================================================================
// Catalog Service Interface
// Groups, channels, labels and quick links: the reference data the
// dashboard filters on
// ===========================================================================

// CatalogService interface for reference data
type CatalogService interface {
	// ListGroups every group with its member count
	ListGroups(ctx context.Context) ([]GroupView, error)

	// CreateGroup inserts a group
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error)

	// AddGroupMember adds an existing user to an existing group
	AddGroupMember(ctx context.Context, groupID uint, req *dto.AddGroupMemberRequest) (*models.UserGroup, error)

	// ListChannels every channel with its attached user count
	ListChannels(ctx context.Context) ([]ChannelView, error)

	// CreateChannel inserts a channel
	CreateChannel(ctx context.Context, req *dto.CreateChannelRequest) (*models.Channel, error)

	// AddChannelUser attaches an existing user to an existing channel
	AddChannelUser(ctx context.Context, channelID uint, req *dto.AddChannelUserRequest) (*models.ChannelUser, error)

	ListLabels(ctx context.Context) ([]models.Label, error)
	CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*models.Label, error)

	ListQuickLinks(ctx context.Context) ([]models.QuickLink, error)
	CreateQuickLink(ctx context.Context, req *dto.CreateQuickLinkRequest) (*models.QuickLink, error)
}
