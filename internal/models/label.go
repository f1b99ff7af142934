package models

// Label a colored tag attached to announcements
type Label struct {
	BaseModel

	// Name label name (e.g. "Urgente")
	Name string `gorm:"size:100;not null" json:"name"`

	// Color hex color (e.g. "#f44336")
	Color string `gorm:"size:20;not null" json:"color"`

	// Type free text kind (e.g. "announcement")
	Type string `gorm:"size:50;not null" json:"type"`
}

// TableName returns the table name
func (Label) TableName() string {
	return "labels"
}

// QuickLink a shortcut shown on the dashboard
type QuickLink struct {
	BaseModel

	Name string `gorm:"size:255;not null" json:"name"`
	URL  string `gorm:"size:1000;not null" json:"url"`
	Icon string `gorm:"size:100;not null" json:"icon"`
}

// TableName returns the table name
func (QuickLink) TableName() string {
	return "quick_links"
}
