package services

import (
	"context"
	"fmt"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/models"
	"classapp-admin/internal/observability/metrics"
	"classapp-admin/internal/query"
	"classapp-admin/internal/realtime"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// Conversation Service Implementation
// ===========================================================================

// conversationService implements ConversationService
type conversationService struct {
	repos     *repositories.Set
	analytics AnalyticsService
	publisher realtime.Publisher
	clock     Clock
	logger    *zap.Logger
}

// NewConversationService creates a new ConversationService
func NewConversationService(
	repos *repositories.Set,
	analytics AnalyticsService,
	publisher realtime.Publisher,
	clock Clock,
	logger *zap.Logger,
) ConversationService {
	return &conversationService{
		repos:     repos,
		analytics: analytics,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// List one page of enriched conversations
func (s *conversationService) List(ctx context.Context, filter query.ConversationFilter, page query.Page) (*ConversationPage, error) {
	convs, total, err := s.repos.Conversations.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	views, err := s.enrich(ctx, convs)
	if err != nil {
		return nil, err
	}

	return &ConversationPage{Conversations: views, Total: total}, nil
}

// Get one enriched conversation
func (s *conversationService) Get(ctx context.Context, id uint) (*ConversationView, error) {
	conv, err := s.repos.Conversations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.enrich(ctx, []models.Conversation{*conv})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Create opens a conversation
func (s *conversationService) Create(ctx context.Context, req *dto.CreateConversationRequest) (*models.Conversation, error) {
	if _, err := s.repos.Channels.FindByID(ctx, req.ChannelID); err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := s.clock()
	conv := &models.Conversation{
		Title:         req.Title,
		ChannelID:     req.ChannelID,
		UserID:        req.UserID,
		Status:        req.Status,
		LastMessageAt: now,
	}
	conv.CreatedAt = now

	if err := s.repos.Conversations.Create(ctx, conv); err != nil {
		return nil, err
	}

	s.analytics.Invalidate(ctx)
	s.logger.Info("conversation created",
		zap.Uint("conversation_id", conv.ID),
		zap.Uint("channel_id", conv.ChannelID),
		zap.Uint("user_id", conv.UserID),
	)
	return conv, nil
}

// ListMessages one page of a conversation's messages
func (s *conversationService) ListMessages(ctx context.Context, conversationID uint, page query.Page) (*MessagePage, error) {
	if _, err := s.repos.Conversations.FindByID(ctx, conversationID); err != nil {
		return nil, err
	}

	msgs, total, err := s.repos.Messages.ListByConversation(ctx, conversationID, page)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return &MessagePage{Messages: msgs, Total: total}, nil
}

// AppendMessage stores a message in an existing conversation
func (s *conversationService) AppendMessage(ctx context.Context, req *dto.CreateMessageRequest) (*models.Message, error) {
	conv, err := s.repos.Conversations.FindByID(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		Content:        req.Content,
	}
	msg.CreatedAt = s.clock()

	if err := s.repos.Messages.Append(ctx, msg); err != nil {
		return nil, err
	}

	metrics.ObserveMessageAppended()
	s.analytics.Invalidate(ctx)

	event := &realtime.MessageEvent{
		Type:           realtime.EventMessageCreated,
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		ChannelID:      conv.ChannelID,
		UserID:         msg.UserID,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
	publishAsync(ctx, s.logger, event.Type, func(ctx context.Context) error {
		return s.publisher.PublishNewMessage(ctx, event)
	})

	s.logger.Info("message appended",
		zap.Uint("message_id", msg.ID),
		zap.Uint("conversation_id", msg.ConversationID),
	)
	return msg, nil
}

// MarkRead sets readAt once
func (s *conversationService) MarkRead(ctx context.Context, messageID uint) (*models.Message, error) {
	return s.repos.Messages.MarkRead(ctx, messageID, s.clock())
}

// UnreadCount number of unread messages
func (s *conversationService) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.repos.Messages.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}

// ===========================================================================
// Enrichment
// ===========================================================================

// enrich joins owner, owner's first group, channel and newest message.
// Missing references fall back to placeholders instead of failing.
func (s *conversationService) enrich(ctx context.Context, convs []models.Conversation) ([]ConversationView, error) {
	convIDs := make([]uint, len(convs))
	userIDs := make([]uint, 0, len(convs))
	channelIDs := make([]uint, 0, len(convs))
	for i, c := range convs {
		convIDs[i] = c.ID
		userIDs = append(userIDs, c.UserID)
		channelIDs = append(channelIDs, c.ChannelID)
	}
	userIDs = uniqueIDs(userIDs)
	channelIDs = uniqueIDs(channelIDs)

	users, err := s.repos.Users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load conversation users: %w", err)
	}
	groups, err := s.repos.Groups.GroupsForUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load conversation user groups: %w", err)
	}
	channels, err := s.repos.Channels.FindByIDs(ctx, channelIDs)
	if err != nil {
		return nil, fmt.Errorf("load conversation channels: %w", err)
	}
	latest, err := s.repos.Messages.LatestByConversations(ctx, convIDs)
	if err != nil {
		return nil, fmt.Errorf("load last messages: %w", err)
	}

	views := make([]ConversationView, len(convs))
	for i, c := range convs {
		view := ConversationView{
			Conversation: c,
			User:         ConversationUser{FullName: UnknownUser},
			Channel:      ConversationChannel{Name: UnknownChannel},
			LastMessage:  NoMessages,
		}
		if u, ok := users[c.UserID]; ok {
			view.User.FullName = u.FullName
			if g := groups[c.UserID]; len(g) > 0 {
				view.User.Group = g[0].Name
			}
		}
		if ch, ok := channels[c.ChannelID]; ok {
			view.Channel = ConversationChannel{Name: ch.Name, Type: ch.Type}
		}
		if m, ok := latest[c.ID]; ok {
			view.LastMessage = m.Content
		}
		views[i] = view
	}
	return views, nil
}
