package repositories

import (
	"context"
	"time"

	"classapp-admin/internal/models"
	"classapp-admin/internal/query"

	"gorm.io/gorm"
)

// ===========================================================================
// Message Repository GORM Implementation
// ===========================================================================

// messageRepo implements MessageRepository with GORM
type messageRepo struct {
	db *gorm.DB
}

// NewMessageRepository creates the GORM message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

// Append inserts the message and bumps the conversation in one transaction.
// The conditional update keeps LastMessageAt monotonic under concurrent appends.
func (r *messageRepo) Append(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conv models.Conversation
		if err := tx.Select("id").First(&conv, msg.ConversationID).Error; err != nil {
			return translateError(err, "conversation")
		}

		if err := tx.Create(msg).Error; err != nil {
			return translateError(err, "message")
		}

		return tx.Model(&models.Conversation{}).
			Where("id = ? AND last_message_at < ?", msg.ConversationID, msg.CreatedAt).
			Update("last_message_at", msg.CreatedAt).Error
	})
}

// FindByID finds a message by id
func (r *messageRepo) FindByID(ctx context.Context, id uint) (*models.Message, error) {
	var msg models.Message
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, translateError(err, "message")
	}
	return &msg, nil
}

// ListByConversation one page of a conversation's messages
func (r *messageRepo) ListByConversation(ctx context.Context, conversationID uint, page query.Page) ([]models.Message, int64, error) {
	messages := []models.Message{}
	var total int64

	q := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ?", conversationID)

	// Count total
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page.Beyond(total) {
		return messages, total, nil
	}

	// Get records, chronological
	if err := q.Order(orderByID).Scopes(paginate(page)).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// LatestByConversations newest message per conversation, by CreatedAt then id
func (r *messageRepo) LatestByConversations(ctx context.Context, conversationIDs []uint) (map[uint]models.Message, error) {
	out := make(map[uint]models.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return out, nil
	}

	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id IN ?", conversationIDs).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	// later rows win
	for _, m := range messages {
		out[m.ConversationID] = m
	}
	return out, nil
}

// ListAll every message in id order
func (r *messageRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.db.WithContext(ctx).Order(orderByID).Find(&messages).Error
	return messages, err
}

// CountUnread number of messages with no ReadAt
func (r *messageRepo) CountUnread(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).Where("read_at IS NULL").Count(&total).Error
	return total, err
}

// MarkRead sets ReadAt once, later calls keep the first timestamp
func (r *messageRepo) MarkRead(ctx context.Context, id uint, at time.Time) (*models.Message, error) {
	var msg models.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Message{}).
			Where("id = ? AND read_at IS NULL", id).
			Update("read_at", at).Error; err != nil {
			return err
		}
		return translateError(tx.First(&msg, id).Error, "message")
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
