package models

// ===========================================================================
// Announcement
// A broadcast sent to every user, with read receipts counted in ReadCount
// ===========================================================================

// Announcement a broadcast message
type Announcement struct {
	BaseModel

	// Title headline
	Title string `gorm:"size:500;not null" json:"title"`

	// Content body
	Content string `gorm:"type:text;not null" json:"content"`

	// SenderID author (a User)
	SenderID uint `gorm:"not null;index" json:"senderId"`

	// ReadCount number of read receipts, never above TotalRecipients
	ReadCount int `gorm:"not null;default:0" json:"readCount"`

	// TotalRecipients number of users at send time
	TotalRecipients int `gorm:"not null;default:0" json:"totalRecipients"`
}

// TableName returns the table name
func (Announcement) TableName() string {
	return "announcements"
}

// ReadRate rounded percentage of recipients that read the announcement,
// clamped to [0,100]. 0 when there are no recipients.
func (a *Announcement) ReadRate() int {
	if a.TotalRecipients <= 0 {
		return 0
	}
	rate := (a.ReadCount*200 + a.TotalRecipients) / (2 * a.TotalRecipients)
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

// ===========================================================================
// AnnouncementLabel (junction table)
// ===========================================================================

// AnnouncementLabel a label attached to an announcement
type AnnouncementLabel struct {
	// ID primary key
	ID uint `gorm:"primaryKey" json:"id"`

	// AnnouncementID announcement
	AnnouncementID uint `gorm:"not null;uniqueIndex:idx_announcement_label" json:"announcementId"`

	// LabelID label
	LabelID uint `gorm:"not null;uniqueIndex:idx_announcement_label;index" json:"labelId"`
}

// TableName returns the table name
func (AnnouncementLabel) TableName() string {
	return "announcement_labels"
}
