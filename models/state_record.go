package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StateRecord is one persisted key-value slot: a category cart, the
// pending service request, or the order awaiting payment. Value holds
// the JSON-serialized state.
type StateRecord struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_owner_key,priority:1"`
	Key     string    `gorm:"not null;uniqueIndex:idx_owner_key,priority:2"`
	Value   string    `gorm:"type:jsonb;not null"`

	UpdatedAt time.Time
	CreatedAt time.Time
}

func (r *StateRecord) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
