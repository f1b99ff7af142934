package models

// ===========================================================================
// Models Index
// List of all models for GORM AutoMigrate
// ===========================================================================

// AllModels returns every model, used by database.AutoMigrate()
func AllModels() []interface{} {
	return []interface{}{
		&User{},                 // school members
		&Group{},                // classes and teams
		&UserGroup{},            // group membership
		&Channel{},              // communication channels
		&ChannelUser{},          // channel membership
		&Label{},                // announcement labels
		&Conversation{},         // threads
		&Message{},              // thread messages
		&Announcement{},         // broadcasts
		&AnnouncementLabel{},    // announcement labels junction
		&QuickLink{},            // dashboard shortcuts
		&OrganizationSettings{}, // singleton
		&DashboardKpi{},         // singleton
	}
}
