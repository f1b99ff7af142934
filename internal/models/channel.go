package models

// ===========================================================================
// Channel (communication channel)
// Secretaria, Financeiro, Coordenação ...; every conversation runs on one
// ===========================================================================

// Channel status literals
const (
	ChannelStatusActive   = "active"
	ChannelStatusInactive = "inactive"
)

// Channel a communication channel of the organization
type Channel struct {
	BaseModel

	// Name channel name
	Name string `gorm:"size:255;not null" json:"name"`

	// Description optional description
	Description *string `gorm:"type:text" json:"description,omitempty"`

	// Type free text channel kind (e.g. "support")
	Type string `gorm:"size:50;not null" json:"type"`

	// Icon icon name shown by the dashboard
	Icon string `gorm:"size:100;not null" json:"icon"`

	// Status active or inactive
	Status string `gorm:"size:20;not null;default:'active'" json:"status"`

	// AverageResponseTime stored average response time in minutes
	AverageResponseTime *float64 `json:"averageResponseTime,omitempty"`

	// CsatScore satisfaction score 0-5
	CsatScore *float64 `json:"csatScore,omitempty"`
}

// TableName returns the table name
func (Channel) TableName() string {
	return "channels"
}

// ===========================================================================
// ChannelUser (junction table)
// Users attached to a channel, optionally as the responsible person
// ===========================================================================

// ChannelUser membership of a user in a channel
type ChannelUser struct {
	// ID primary key
	ID uint `gorm:"primaryKey" json:"id"`

	// ChannelID channel
	ChannelID uint `gorm:"not null;uniqueIndex:idx_channel_user" json:"channelId"`

	// UserID user
	UserID uint `gorm:"not null;uniqueIndex:idx_channel_user" json:"userId"`

	// IsResponsible user answers the channel
	IsResponsible bool `gorm:"not null;default:false" json:"isResponsible"`
}

// TableName returns the table name
func (ChannelUser) TableName() string {
	return "channel_users"
}
