package handlers

import (
	"net/http"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/query"
	"classapp-admin/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Conversation Handler
// Endpoints for conversations, messages and unread notifications
// ===========================================================================

// ConversationHandler handles conversation and message endpoints
type ConversationHandler struct {
	conversations services.ConversationService
	paging        Paging
	logger        *zap.Logger
}

// NewConversationHandler creates a new handler
func NewConversationHandler(conversations services.ConversationService, paging Paging, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{
		conversations: conversations,
		paging:        paging,
		logger:        logger,
	}
}

// List lists conversations, the filtered total goes in X-Total-Count
// GET /api/conversations?search=&status=&channel=&page=1&limit=10
func (h *ConversationHandler) List(c *gin.Context) {
	var q dto.ListConversationsQuery
	if !bindQuery(c, &q) {
		return
	}

	filter := query.NewConversationFilter(q.Search, q.Status, q.Channel)
	page, err := h.conversations.List(c.Request.Context(), filter, h.paging.page(q.PaginationQuery))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get conversations")
		return
	}

	setTotal(c, page.Total)
	c.JSON(http.StatusOK, page.Conversations)
}

// Get returns one enriched conversation
// GET /api/conversations/:id
func (h *ConversationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "conversation")
	if !ok {
		return
	}

	conv, err := h.conversations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get conversation")
		return
	}

	c.JSON(http.StatusOK, conv)
}

// Create opens a conversation
// POST /api/conversations
func (h *ConversationHandler) Create(c *gin.Context) {
	var req dto.CreateConversationRequest
	if !bindJSON(c, &req) {
		return
	}

	conv, err := h.conversations.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create conversation")
		return
	}

	c.JSON(http.StatusCreated, conv)
}

// ListMessages lists a conversation's messages, oldest first
// GET /api/conversations/:id/messages?page=1&limit=10
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	id, ok := pathID(c, "id", "conversation")
	if !ok {
		return
	}

	var q dto.PaginationQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.conversations.ListMessages(c.Request.Context(), id, h.paging.page(q))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get messages")
		return
	}

	setTotal(c, page.Total)
	c.JSON(http.StatusOK, page.Messages)
}

// CreateMessage appends a message to a conversation
// POST /api/messages
func (h *ConversationHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.conversations.AppendMessage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create message")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// MarkRead marks a message read
// POST /api/messages/:id/read
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id", "message")
	if !ok {
		return
	}

	msg, err := h.conversations.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to mark message read")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// UnreadCount number of unread messages
// GET /api/notifications/unread-count
func (h *ConversationHandler) UnreadCount(c *gin.Context) {
	count, err := h.conversations.UnreadCount(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to count unread messages")
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// RegisterRoutes registers the conversation, message and notification routes
func (h *ConversationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	conversations := rg.Group("/conversations")
	{
		conversations.GET("", h.List)
		conversations.POST("", h.Create)
		conversations.GET("/:id", h.Get)
		conversations.GET("/:id/messages", h.ListMessages)
	}

	messages := rg.Group("/messages")
	{
		messages.POST("", h.CreateMessage)
		messages.POST("/:id/read", h.MarkRead)
	}

	rg.GET("/notifications/unread-count", h.UnreadCount)
}
