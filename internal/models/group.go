package models

// ===========================================================================
// Group (class, team or department)
// Membership is stored in UserGroup
// ===========================================================================

// Group visibility literals
const (
	VisibilityPublic     = "public"
	VisibilityRestricted = "restricted"
	VisibilityPrivate    = "private"
)

// Group a named set of users
type Group struct {
	BaseModel

	// Name group name (e.g. "Turma 9A")
	Name string `gorm:"size:255;not null" json:"name"`

	// Description optional description
	Description *string `gorm:"type:text" json:"description,omitempty"`

	// Visibility public, restricted or private
	Visibility string `gorm:"size:20;not null;default:'public'" json:"visibility"`
}

// TableName returns the table name
func (Group) TableName() string {
	return "groups"
}

// ===========================================================================
// UserGroup (junction table)
// Many-to-many between User and Group
// ===========================================================================

// UserGroup membership of a user in a group
type UserGroup struct {
	// ID primary key
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID member
	UserID uint `gorm:"not null;uniqueIndex:idx_user_group" json:"userId"`

	// GroupID group
	GroupID uint `gorm:"not null;uniqueIndex:idx_user_group;index" json:"groupId"`
}

// TableName returns the table name
func (UserGroup) TableName() string {
	return "user_groups"
}
