package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment statuses follow the dispatch flow: validation happens before
// anything is persisted, so a record starts at processing and ends
// completed or failed. Failed payments are kept so the user can
// resubmit.
const (
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
)

type Payment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"userId"`
	RequestID *uuid.UUID `gorm:"type:uuid;index" json:"requestId,omitempty"`

	ServiceType   string  `gorm:"type:varchar(30);not null" json:"service_type"`
	Amount        float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string  `gorm:"type:varchar(20);not null" json:"payment_method"`
	PhoneNumber   string  `json:"phone_number,omitempty"`
	Description   string  `json:"description"`

	Status       string `gorm:"type:varchar(20);default:'processing'" json:"status"`
	Reference    string `gorm:"uniqueIndex;not null" json:"reference"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
