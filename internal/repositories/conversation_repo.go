package repositories

import (
	"context"

	"classapp-admin/internal/models"
	"classapp-admin/internal/query"

	"gorm.io/gorm"
)

// ===========================================================================
// Conversation Repository GORM Implementation
// ===========================================================================

// conversationRepo implements ConversationRepository with GORM
type conversationRepo struct {
	db *gorm.DB
}

// NewConversationRepository creates the GORM conversation repository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepo{db: db}
}

// FindByID finds a conversation by id
func (r *conversationRepo) FindByID(ctx context.Context, id uint) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.WithContext(ctx).First(&conv, id).Error; err != nil {
		return nil, translateError(err, "conversation")
	}
	return &conv, nil
}

// List returns one page of filtered conversations and the filtered total
func (r *conversationRepo) List(ctx context.Context, filter query.ConversationFilter, page query.Page) ([]models.Conversation, int64, error) {
	conversations := []models.Conversation{}
	var total int64

	if filter.Channel.MatchesNothing() {
		return conversations, 0, nil
	}

	q := r.db.WithContext(ctx).Model(&models.Conversation{})

	// Apply filters
	if filter.Search != "" {
		q = q.Where("LOWER(title)"+likeEscaped, query.LikePattern(filter.Search))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Channel.Active {
		q = q.Where("channel_id = ?", filter.Channel.ID)
	}

	// Count total
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page.Beyond(total) {
		return conversations, total, nil
	}

	// Get records
	if err := q.Order(orderByID).Scopes(paginate(page)).Find(&conversations).Error; err != nil {
		return nil, 0, err
	}

	return conversations, total, nil
}

// ListAll every conversation in id order
func (r *conversationRepo) ListAll(ctx context.Context) ([]models.Conversation, error) {
	conversations := []models.Conversation{}
	err := r.db.WithContext(ctx).Order(orderByID).Find(&conversations).Error
	return conversations, err
}

// Create inserts a conversation
func (r *conversationRepo) Create(ctx context.Context, conv *models.Conversation) error {
	return translateError(r.db.WithContext(ctx).Create(conv).Error, "conversation")
}
