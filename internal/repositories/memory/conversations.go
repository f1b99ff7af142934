package memory

import (
	"context"
	"time"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
)

// ===========================================================================
// Conversations and messages
// ===========================================================================

type conversationRepo struct {
	s *Store
}

// FindByID finds a conversation by id
func (r *conversationRepo) FindByID(ctx context.Context, id uint) (*models.Conversation, error) {
	var out *models.Conversation
	err := r.s.read(ctx, func() error {
		i := r.s.conversationIndex(id)
		if i < 0 {
			return apperrors.NotFound("conversation")
		}
		c := r.s.conversations[i]
		out = &c
		return nil
	})
	return out, err
}

// List returns one page of filtered conversations and the filtered total
func (r *conversationRepo) List(ctx context.Context, filter query.ConversationFilter, page query.Page) ([]models.Conversation, int64, error) {
	var matched []models.Conversation
	err := r.s.read(ctx, func() error {
		if filter.Channel.MatchesNothing() {
			return nil
		}
		for _, c := range r.s.conversations {
			if filter.Search != "" && (c.Title == nil || !query.ContainsFold(*c.Title, filter.Search)) {
				continue
			}
			if filter.Status != "" && c.Status != filter.Status {
				continue
			}
			if !filter.Channel.Matches(c.ChannelID) {
				continue
			}
			matched = append(matched, c)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return query.Paginate(matched, page), int64(len(matched)), nil
}

// ListAll every conversation in id order
func (r *conversationRepo) ListAll(ctx context.Context) ([]models.Conversation, error) {
	var out []models.Conversation
	err := r.s.read(ctx, func() error {
		out = append([]models.Conversation{}, r.s.conversations...)
		return nil
	})
	return out, err
}

// Create inserts a conversation
func (r *conversationRepo) Create(ctx context.Context, conv *models.Conversation) error {
	return r.s.write(ctx, func() error {
		if conv.Status == "" {
			conv.Status = models.ConversationStatusPendente
		}
		conv.ID = r.s.nextID("conversations")
		r.s.stamp(&conv.CreatedAt)
		if conv.LastMessageAt.Before(conv.CreatedAt) {
			conv.LastMessageAt = conv.CreatedAt
		}
		r.s.conversations = append(r.s.conversations, *conv)
		return nil
	})
}

// conversationIndex position of id in s.conversations or -1, lock held
func (s *Store) conversationIndex(id uint) int {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return i
		}
	}
	return -1
}

type messageRepo struct {
	s *Store
}

// Append inserts msg and bumps its conversation inside one critical section
func (r *messageRepo) Append(ctx context.Context, msg *models.Message) error {
	return r.s.write(ctx, func() error {
		i := r.s.conversationIndex(msg.ConversationID)
		if i < 0 {
			return apperrors.NotFound("conversation")
		}
		msg.ID = r.s.nextID("messages")
		r.s.stamp(&msg.CreatedAt)
		r.s.messages = append(r.s.messages, *msg)
		r.s.conversations[i].Touch(msg.CreatedAt)
		return nil
	})
}

// FindByID finds a message by id
func (r *messageRepo) FindByID(ctx context.Context, id uint) (*models.Message, error) {
	var out *models.Message
	err := r.s.read(ctx, func() error {
		i := r.s.messageIndex(id)
		if i < 0 {
			return apperrors.NotFound("message")
		}
		m := r.s.messages[i]
		out = &m
		return nil
	})
	return out, err
}

// ListByConversation one page of a conversation's messages
func (r *messageRepo) ListByConversation(ctx context.Context, conversationID uint, page query.Page) ([]models.Message, int64, error) {
	var matched []models.Message
	err := r.s.read(ctx, func() error {
		for _, m := range r.s.messages {
			if m.ConversationID == conversationID {
				matched = append(matched, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return query.Paginate(matched, page), int64(len(matched)), nil
}

// LatestByConversations newest message per conversation, by CreatedAt then id
func (r *messageRepo) LatestByConversations(ctx context.Context, conversationIDs []uint) (map[uint]models.Message, error) {
	out := make(map[uint]models.Message, len(conversationIDs))
	err := r.s.read(ctx, func() error {
		wanted := idSet(conversationIDs)
		for _, m := range r.s.messages {
			if _, ok := wanted[m.ConversationID]; !ok {
				continue
			}
			// ids grow with insertion, so on a CreatedAt tie the later row wins
			if cur, ok := out[m.ConversationID]; ok && m.CreatedAt.Before(cur.CreatedAt) {
				continue
			}
			out[m.ConversationID] = m
		}
		return nil
	})
	return out, err
}

// ListAll every message in id order
func (r *messageRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	var out []models.Message
	err := r.s.read(ctx, func() error {
		out = append([]models.Message{}, r.s.messages...)
		return nil
	})
	return out, err
}

// CountUnread number of messages with no ReadAt
func (r *messageRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.read(ctx, func() error {
		for _, m := range r.s.messages {
			if !m.IsRead() {
				n++
			}
		}
		return nil
	})
	return n, err
}

// MarkRead sets ReadAt once, later calls keep the first timestamp
func (r *messageRepo) MarkRead(ctx context.Context, id uint, at time.Time) (*models.Message, error) {
	var out *models.Message
	err := r.s.write(ctx, func() error {
		i := r.s.messageIndex(id)
		if i < 0 {
			return apperrors.NotFound("message")
		}
		r.s.messages[i].MarkRead(at)
		m := r.s.messages[i]
		out = &m
		return nil
	})
	return out, err
}

// messageIndex position of id in s.messages or -1, lock held
func (s *Store) messageIndex(id uint) int {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}
