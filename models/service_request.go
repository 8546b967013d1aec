package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequest is a finalized order: the flattened service items from
// one or more category carts plus the customer details captured on the
// request form. ReferenceNumber is a client-visible draft token; the
// row ID is the authoritative identifier.
type ServiceRequest struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	ReferenceNumber string `gorm:"uniqueIndex;not null"`

	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"not null"`
	CustomerPhone string `gorm:"not null"`
	Company       string
	TaxID         string

	Category string `gorm:"type:varchar(20)"` // kra, data, business, other

	TotalAmount   float64 `gorm:"type:decimal(10,2);not null"`
	Priority      string  `gorm:"type:varchar(10);default:'normal'"` // normal, urgent, express
	TotalWithFees float64 `gorm:"type:decimal(10,2);not null"`

	Status string `gorm:"type:varchar(20);default:'pending'"` // pending, paid, completed, cancelled
	Notes  string

	Items []RequestItem `gorm:"foreignKey:RequestID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequestItem is one frozen service line on a request. UnitPrice and
// TotalPrice are copied at finalize time and never recomputed.
type RequestItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RequestID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceType string    `gorm:"type:varchar(20);not null"`
	ServiceID   string    `gorm:"not null"`
	ServiceName string    `gorm:"not null"`
	Quantity    int       `gorm:"default:1"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null"`
	TotalPrice  float64   `gorm:"type:decimal(10,2);not null"`
}
