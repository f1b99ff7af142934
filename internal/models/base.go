package models

import (
	"time"

	"gorm.io/gorm"
)

// ===========================================================================
// BaseModel is embedded by every listable entity
// Holds the auto-increment id and the creation timestamp
// ===========================================================================

// BaseModel common fields of all list entities
type BaseModel struct {
	// ID auto-increment primary key, stable per entity type
	ID uint `gorm:"primaryKey" json:"id"`

	// CreatedAt time the record was inserted
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// BeforeCreate stamps CreatedAt when the caller did not set it
// (seed data sets it explicitly to build history)
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return nil
}

// GetID returns the model id
func (b *BaseModel) GetID() uint {
	return b.ID
}
