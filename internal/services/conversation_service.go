package services

import (
	"context"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
)

// ===========================================================================
// Conversation Service Interface
// Conversation inbox and message thread operations
// Flow on append: validate -> store message + bump lastMessageAt -> drop
// cached analytics -> publish realtime event
// ===========================================================================

// ConversationPage one page of enriched conversations
type ConversationPage struct {
	Conversations []ConversationView
	Total         int64
}

// MessagePage one page of a conversation's messages
type MessagePage struct {
	Messages []models.Message
	Total    int64
}

// ConversationService interface for conversation and message operations
type ConversationService interface {
	// List one page of conversations matching filter, enriched
	List(ctx context.Context, filter query.ConversationFilter, page query.Page) (*ConversationPage, error)

	// Get one enriched conversation
	Get(ctx context.Context, id uint) (*ConversationView, error)

	// Create opens a conversation between an existing user and channel
	Create(ctx context.Context, req *dto.CreateConversationRequest) (*models.Conversation, error)

	// ListMessages one page of a conversation's messages, oldest first
	ListMessages(ctx context.Context, conversationID uint, page query.Page) (*MessagePage, error)

	// AppendMessage stores a message and moves the conversation's
	// lastMessageAt forward
	AppendMessage(ctx context.Context, req *dto.CreateMessageRequest) (*models.Message, error)

	// MarkRead sets readAt on a message, keeping the first read time
	MarkRead(ctx context.Context, messageID uint) (*models.Message, error)

	// UnreadCount number of messages never read
	UnreadCount(ctx context.Context) (int64, error)
}
