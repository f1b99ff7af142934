package repositories

import (
	"gorm.io/gorm"
)

// NewGormSet wires every GORM repository on db
func NewGormSet(db *gorm.DB) *Set {
	return &Set{
		Users:         NewUserRepository(db),
		Groups:        NewGroupRepository(db),
		Channels:      NewChannelRepository(db),
		Conversations: NewConversationRepository(db),
		Messages:      NewMessageRepository(db),
		Announcements: NewAnnouncementRepository(db),
		Labels:        NewLabelRepository(db),
		QuickLinks:    NewQuickLinkRepository(db),
		Settings:      NewSettingsRepository(db),
	}
}
