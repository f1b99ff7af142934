package repositories

import (
	"context"
	"time"

	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
)

// ===========================================================================
// Repository Interfaces
// Implemented by the GORM backend (this package) and the in-memory backend
// (package memory). Both order listings by ascending id and return
// apperrors sentinels (ErrNotFound, ErrDuplicateEntry).
// ===========================================================================

// UserRepository user data access
type UserRepository interface {
	// FindByID finds a user by id
	FindByID(ctx context.Context, id uint) (*models.User, error)

	// FindByUsername finds a user by its unique username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByIDs returns the users among ids that exist, keyed by id
	FindByIDs(ctx context.Context, ids []uint) (map[uint]models.User, error)

	// List returns one page of users matching filter, plus the filtered total
	List(ctx context.Context, filter query.UserFilter, page query.Page) ([]models.User, int64, error)

	// Create inserts a user and its memberships atomically. groupIDs must
	// be distinct. A taken username yields ErrDuplicateEntry, an unknown
	// group ErrNotFound, and neither leaves any row behind
	Create(ctx context.Context, user *models.User, groupIDs []uint) error

	// Count number of users
	Count(ctx context.Context) (int64, error)

	// CountByStatus number of users with the given status
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// GroupRepository group and membership data access
type GroupRepository interface {
	// List every group
	List(ctx context.Context) ([]models.Group, error)

	// FindByID finds a group by id
	FindByID(ctx context.Context, id uint) (*models.Group, error)

	// Create inserts a group
	Create(ctx context.Context, group *models.Group) error

	// AddMember inserts a membership. An existing pair yields ErrDuplicateEntry
	AddMember(ctx context.Context, member *models.UserGroup) error

	// GroupsForUsers groups of each user, ordered by group id
	GroupsForUsers(ctx context.Context, userIDs []uint) (map[uint][]models.Group, error)

	// MemberCounts number of members per group id
	MemberCounts(ctx context.Context) (map[uint]int64, error)
}

// ChannelRepository channel and channel membership data access
type ChannelRepository interface {
	// List every channel
	List(ctx context.Context) ([]models.Channel, error)

	// FindByID finds a channel by id
	FindByID(ctx context.Context, id uint) (*models.Channel, error)

	// FindByIDs returns the channels among ids that exist, keyed by id
	FindByIDs(ctx context.Context, ids []uint) (map[uint]models.Channel, error)

	// Create inserts a channel
	Create(ctx context.Context, channel *models.Channel) error

	// AddUser attaches a user. An existing pair yields ErrDuplicateEntry
	AddUser(ctx context.Context, member *models.ChannelUser) error

	// UserCounts number of attached users per channel id
	UserCounts(ctx context.Context) (map[uint]int64, error)
}

// ConversationRepository conversation data access
type ConversationRepository interface {
	// FindByID finds a conversation by id
	FindByID(ctx context.Context, id uint) (*models.Conversation, error)

	// List returns one page of conversations matching filter, plus the filtered total
	List(ctx context.Context, filter query.ConversationFilter, page query.Page) ([]models.Conversation, int64, error)

	// ListAll every conversation, for analytics
	ListAll(ctx context.Context) ([]models.Conversation, error)

	// Create inserts a conversation
	Create(ctx context.Context, conv *models.Conversation) error
}

// MessageRepository message data access
type MessageRepository interface {
	// Append inserts msg and moves its conversation's LastMessageAt forward
	// to msg.CreatedAt in one atomic step. A missing conversation yields ErrNotFound
	Append(ctx context.Context, msg *models.Message) error

	// FindByID finds a message by id
	FindByID(ctx context.Context, id uint) (*models.Message, error)

	// ListByConversation one page of a conversation's messages in id order
	ListByConversation(ctx context.Context, conversationID uint, page query.Page) ([]models.Message, int64, error)

	// LatestByConversations newest message of each conversation that has one
	LatestByConversations(ctx context.Context, conversationIDs []uint) (map[uint]models.Message, error)

	// ListAll every message in id order, for analytics
	ListAll(ctx context.Context) ([]models.Message, error)

	// CountUnread number of messages never read
	CountUnread(ctx context.Context) (int64, error)

	// MarkRead sets ReadAt if unset and returns the message
	MarkRead(ctx context.Context, id uint, at time.Time) (*models.Message, error)
}

// AnnouncementRepository announcement data access
type AnnouncementRepository interface {
	// FindByID finds an announcement by id
	FindByID(ctx context.Context, id uint) (*models.Announcement, error)

	// List returns one page of announcements matching filter, plus the filtered total
	List(ctx context.Context, filter query.AnnouncementFilter, page query.Page) ([]models.Announcement, int64, error)

	// Create inserts an announcement and its label links atomically
	Create(ctx context.Context, announcement *models.Announcement, labelIDs []uint) error

	// LabelsForAnnouncements labels of each announcement, ordered by label id
	LabelsForAnnouncements(ctx context.Context, announcementIDs []uint) (map[uint][]models.Label, error)

	// Totals sum of ReadCount and of TotalRecipients over all announcements
	Totals(ctx context.Context) (readCount int64, totalRecipients int64, err error)

	// RecordRead increments ReadCount unless it already equals TotalRecipients
	RecordRead(ctx context.Context, id uint) (*models.Announcement, error)
}

// LabelRepository label data access
type LabelRepository interface {
	List(ctx context.Context) ([]models.Label, error)
	FindByID(ctx context.Context, id uint) (*models.Label, error)
	Create(ctx context.Context, label *models.Label) error
}

// QuickLinkRepository quick link data access
type QuickLinkRepository interface {
	List(ctx context.Context) ([]models.QuickLink, error)
	Create(ctx context.Context, link *models.QuickLink) error
}

// SettingsRepository access to the two singleton records.
// Get* inserts defaults when the record is absent (created = true);
// concurrent first reads create exactly one record. Update* reads,
// applies and saves in one atomic step, creating the defaults first if needed.
type SettingsRepository interface {
	GetOrCreateOrganization(ctx context.Context, defaults *models.OrganizationSettings) (settings *models.OrganizationSettings, created bool, err error)
	UpdateOrganization(ctx context.Context, defaults *models.OrganizationSettings, apply func(*models.OrganizationSettings)) (*models.OrganizationSettings, bool, error)

	GetOrCreateKpi(ctx context.Context, defaults *models.DashboardKpi) (kpi *models.DashboardKpi, created bool, err error)
	UpdateKpi(ctx context.Context, defaults *models.DashboardKpi, apply func(*models.DashboardKpi)) (*models.DashboardKpi, bool, error)
}

// ===========================================================================
// Set bundles one backend's repositories
// ===========================================================================

// Set every repository of one backend
type Set struct {
	Users         UserRepository
	Groups        GroupRepository
	Channels      ChannelRepository
	Conversations ConversationRepository
	Messages      MessageRepository
	Announcements AnnouncementRepository
	Labels        LabelRepository
	QuickLinks    QuickLinkRepository
	Settings      SettingsRepository
}
