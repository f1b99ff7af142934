package models

import (
	"time"
)

// ===========================================================================
// Message
// One entry of a conversation. ReadAt is nil until the message is read
// ===========================================================================

// Message a message inside a conversation
type Message struct {
	BaseModel

	// ConversationID parent conversation
	ConversationID uint `gorm:"not null;index" json:"conversationId"`

	// UserID author
	UserID uint `gorm:"not null;index" json:"userId"`

	// Content text content
	Content string `gorm:"type:text;not null" json:"content"`

	// ReadAt time the message was read
	ReadAt *time.Time `gorm:"index" json:"readAt,omitempty"`
}

// TableName returns the table name
func (Message) TableName() string {
	return "messages"
}

// IsRead message was read
func (m *Message) IsRead() bool {
	return m.ReadAt != nil
}

// MarkRead sets ReadAt once. Later calls keep the first timestamp.
func (m *Message) MarkRead(at time.Time) {
	if m.ReadAt == nil {
		m.ReadAt = &at
	}
}
