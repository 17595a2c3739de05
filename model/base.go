package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base replaces gorm.Model for entities addressed by opaque string ids.
// Identifiers are generated by the store layer on create, never supplied
// by callers. Deletes are hard deletes: cascade semantics depend on rows
// actually disappearing.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
