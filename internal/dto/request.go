package dto

// ===========================================================================
// Request DTOs (Data Transfer Objects)
// Structs used to bind and validate request bodies and query strings.
// Paging and filter values are bound as strings: a malformed value falls
// back to its default instead of failing the request.
// ===========================================================================

// PaginationQuery page/limit query parameters
type PaginationQuery struct {
	// Page 1-based page number
	Page string `form:"page"`

	// Limit page size
	Limit string `form:"limit"`
}

// ===========================================================================
// User Requests
// ===========================================================================

// ListUsersQuery GET /api/users
type ListUsersQuery struct {
	PaginationQuery

	Search  string `form:"search"`
	Profile string `form:"profile"`
	Group   string `form:"group"`
	Status  string `form:"status"`
}

// CreateUserRequest POST /api/users
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=100"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	FullName string  `json:"fullName" binding:"required,max=255"`
	Email    string  `json:"email" binding:"required,email,max=255"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=500"`
	Profile  string  `json:"profile" binding:"omitempty,max=50"`
	Status   string  `json:"status" binding:"omitempty,max=50"`
	GroupIDs []uint  `json:"groupIds" binding:"omitempty,dive,min=1"`
}

// ===========================================================================
// Conversation / Message Requests
// ===========================================================================

// ListConversationsQuery GET /api/conversations
type ListConversationsQuery struct {
	PaginationQuery

	Search  string `form:"search"`
	Status  string `form:"status"`
	Channel string `form:"channel"`
}

// CreateConversationRequest POST /api/conversations
type CreateConversationRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=500"`
	ChannelID uint    `json:"channelId" binding:"required,min=1"`
	UserID    uint    `json:"userId" binding:"required,min=1"`
	Status    string  `json:"status" binding:"omitempty,max=50"`
}

// CreateMessageRequest POST /api/messages
type CreateMessageRequest struct {
	ConversationID uint   `json:"conversationId" binding:"required,min=1"`
	UserID         uint   `json:"userId" binding:"required,min=1"`
	Content        string `json:"content" binding:"required,min=1,max=5000"`
}

// ===========================================================================
// Announcement Requests
// ===========================================================================

// ListAnnouncementsQuery GET /api/announcements
type ListAnnouncementsQuery struct {
	PaginationQuery

	Search string `form:"search"`
	Label  string `form:"label"`
}

// CreateAnnouncementRequest POST /api/announcements
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,max=500"`
	Content  string `json:"content" binding:"required"`
	SenderID uint   `json:"senderId" binding:"required,min=1"`
	LabelIDs []uint `json:"labelIds" binding:"omitempty,dive,min=1"`
}

// ===========================================================================
// Catalog Requests
// ===========================================================================

// CreateChannelRequest POST /api/channels
type CreateChannelRequest struct {
	Name                string   `json:"name" binding:"required,max=255"`
	Description         *string  `json:"description"`
	Type                string   `json:"type" binding:"required,max=50"`
	Icon                string   `json:"icon" binding:"required,max=100"`
	Status              string   `json:"status" binding:"omitempty,max=20"`
	AverageResponseTime *float64 `json:"averageResponseTime" binding:"omitempty,min=0"`
	CsatScore           *float64 `json:"csatScore" binding:"omitempty,min=0,max=5"`
}

// AddChannelUserRequest POST /api/channels/:id/users
type AddChannelUserRequest struct {
	UserID        uint `json:"userId" binding:"required,min=1"`
	IsResponsible bool `json:"isResponsible"`
}

// CreateGroupRequest POST /api/groups
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Visibility  string  `json:"visibility" binding:"omitempty,max=20"`
}

// AddGroupMemberRequest POST /api/groups/:id/members
type AddGroupMemberRequest struct {
	UserID uint `json:"userId" binding:"required,min=1"`
}

// CreateLabelRequest POST /api/labels
type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"required,max=20"`
	Type  string `json:"type" binding:"required,max=50"`
}

// CreateQuickLinkRequest POST /api/quick-links
type CreateQuickLinkRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	URL  string `json:"url" binding:"required,url,max=1000"`
	Icon string `json:"icon" binding:"required,max=100"`
}
