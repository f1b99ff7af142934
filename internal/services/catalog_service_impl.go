package services

import (
	"context"
	"fmt"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/models"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// Catalog Service Implementation
// ===========================================================================

// catalogService implements CatalogService
type catalogService struct {
	repos     *repositories.Set
	analytics AnalyticsService
	logger    *zap.Logger
}

// NewCatalogService creates a new CatalogService. analytics is told when a
// channel is added so the cached bundle lists it.
func NewCatalogService(repos *repositories.Set, analytics AnalyticsService, logger *zap.Logger) CatalogService {
	return &catalogService{
		repos:     repos,
		analytics: analytics,
		logger:    logger,
	}
}

// ===========================================================================
// Groups
// ===========================================================================

func (s *catalogService) ListGroups(ctx context.Context) ([]GroupView, error) {
	groups, err := s.repos.Groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	counts, err := s.repos.Groups.MemberCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count group members: %w", err)
	}

	views := make([]GroupView, len(groups))
	for i, g := range groups {
		views[i] = GroupView{Group: g, UserCount: counts[g.ID]}
	}
	return views, nil
}

func (s *catalogService) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
	}
	if err := s.repos.Groups.Create(ctx, group); err != nil {
		return nil, err
	}
	s.logger.Info("group created", zap.Uint("group_id", group.ID))
	return group, nil
}

func (s *catalogService) AddGroupMember(ctx context.Context, groupID uint, req *dto.AddGroupMemberRequest) (*models.UserGroup, error) {
	if _, err := s.repos.Groups.FindByID(ctx, groupID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	member := &models.UserGroup{UserID: req.UserID, GroupID: groupID}
	if err := s.repos.Groups.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ===========================================================================
// Channels
// ===========================================================================

func (s *catalogService) ListChannels(ctx context.Context) ([]ChannelView, error) {
	channels, err := s.repos.Channels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	counts, err := s.repos.Channels.UserCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count channel users: %w", err)
	}

	views := make([]ChannelView, len(channels))
	for i, c := range channels {
		views[i] = ChannelView{Channel: c, UserCount: counts[c.ID]}
	}
	return views, nil
}

func (s *catalogService) CreateChannel(ctx context.Context, req *dto.CreateChannelRequest) (*models.Channel, error) {
	channel := &models.Channel{
		Name:                req.Name,
		Description:         req.Description,
		Type:                req.Type,
		Icon:                req.Icon,
		Status:              req.Status,
		AverageResponseTime: req.AverageResponseTime,
		CsatScore:           req.CsatScore,
	}
	if err := s.repos.Channels.Create(ctx, channel); err != nil {
		return nil, err
	}

	s.analytics.Invalidate(ctx)
	s.logger.Info("channel created", zap.Uint("channel_id", channel.ID), zap.String("type", channel.Type))
	return channel, nil
}

func (s *catalogService) AddChannelUser(ctx context.Context, channelID uint, req *dto.AddChannelUserRequest) (*models.ChannelUser, error) {
	if _, err := s.repos.Channels.FindByID(ctx, channelID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	member := &models.ChannelUser{
		ChannelID:     channelID,
		UserID:        req.UserID,
		IsResponsible: req.IsResponsible,
	}
	if err := s.repos.Channels.AddUser(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ===========================================================================
// Labels & Quick Links
// ===========================================================================

func (s *catalogService) ListLabels(ctx context.Context) ([]models.Label, error) {
	labels, err := s.repos.Labels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

func (s *catalogService) CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*models.Label, error) {
	label := &models.Label{Name: req.Name, Color: req.Color, Type: req.Type}
	if err := s.repos.Labels.Create(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

func (s *catalogService) ListQuickLinks(ctx context.Context) ([]models.QuickLink, error) {
	links, err := s.repos.QuickLinks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quick links: %w", err)
	}
	return links, nil
}

func (s *catalogService) CreateQuickLink(ctx context.Context, req *dto.CreateQuickLinkRequest) (*models.QuickLink, error) {
	link := &models.QuickLink{Name: req.Name, URL: req.URL, Icon: req.Icon}
	if err := s.repos.QuickLinks.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}
