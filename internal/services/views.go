package services

import (
	"classapp-admin/internal/models"
)

// ===========================================================================
// Views
// Records decorated by the enrichment step of list and get operations
// ===========================================================================

// Enrichment placeholders
const (
	NoMessages     = "Sem mensagens"
	UnknownUser    = "Usuário desconhecido"
	UnknownChannel = "Canal desconhecido"
	UnknownSender  = "Remetente desconhecido"
)

// UserView user with its groups
type UserView struct {
	models.User
	Groups []models.Group `json:"groups"`
}

// UserPage response of GET /api/users
type UserPage struct {
	Users []UserView `json:"users"`
	Total int64      `json:"total"`
}

// GroupView group with its member count
type GroupView struct {
	models.Group
	UserCount int64 `json:"userCount"`
}

// ChannelView channel with its attached user count
type ChannelView struct {
	models.Channel
	UserCount int64 `json:"userCount"`
}

// ConversationUser owner summary of a conversation
type ConversationUser struct {
	FullName string `json:"fullName"`
	Group    string `json:"group"`
}

// ConversationChannel channel summary of a conversation
type ConversationChannel struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ConversationView conversation with owner, channel and newest message
type ConversationView struct {
	models.Conversation
	User        ConversationUser    `json:"user"`
	Channel     ConversationChannel `json:"channel"`
	LastMessage string              `json:"lastMessage"`
}

// AnnouncementSender sender summary of an announcement
type AnnouncementSender struct {
	Name string `json:"name"`
}

// AnnouncementView announcement with sender, read rate and labels
type AnnouncementView struct {
	models.Announcement
	Sender   AnnouncementSender `json:"sender"`
	ReadRate int                `json:"readRate"`
	Labels   []models.Label     `json:"labels"`
}
