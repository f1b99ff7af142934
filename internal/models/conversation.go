package models

import (
	"time"
)

// ===========================================================================
// Conversation
// A thread between a user and a channel. LastMessageAt only moves forward
// ===========================================================================

// Conversation status literals ("sem status" only appears in seed data)
const (
	ConversationStatusPendente   = "pendente"
	ConversationStatusFinalizado = "finalizado"
	ConversationStatusSemStatus  = "sem status"
)

// Conversation a thread on a channel
type Conversation struct {
	BaseModel

	// Title optional subject
	Title *string `gorm:"size:500" json:"title,omitempty"`

	// ChannelID channel the conversation runs on
	ChannelID uint `gorm:"not null;index" json:"channelId"`

	// UserID owner of the conversation
	UserID uint `gorm:"not null;index" json:"userId"`

	// Status pendente, finalizado, ...
	Status string `gorm:"size:50;not null;default:'pendente';index" json:"status"`

	// LastMessageAt time of the newest message (CreatedAt when empty)
	LastMessageAt time.Time `gorm:"not null" json:"lastMessageAt"`
}

// TableName returns the table name
func (Conversation) TableName() string {
	return "conversations"
}

// Touch moves LastMessageAt forward to at, never backwards.
// Returns true when the value changed.
func (c *Conversation) Touch(at time.Time) bool {
	if at.After(c.LastMessageAt) {
		c.LastMessageAt = at
		return true
	}
	return false
}
