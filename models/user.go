package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"bizhub-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string
	Company  string
	TaxID    string

	Role string `gorm:"type:varchar(20);not null;default:'customer'"` // 'customer' or 'admin'

	// Notification preferences, e.g. {"email": true, "sms": false}
	Preferences JSONB `gorm:"type:jsonb;default:'{}'"`

	ResetToken       *string
	ResetTokenExpiry *time.Time

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	Requests      []ServiceRequest `gorm:"foreignKey:UserID"`
	Payments      []Payment        `gorm:"foreignKey:UserID"`
	Notifications []Notification   `gorm:"foreignKey:UserID"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Custom JSONB type for notification preferences
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
