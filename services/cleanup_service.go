// services/cleanup_service.go
package services

import (
	"log"
	"time"

	"bizhub-backend/models"
	"bizhub-backend/storage"
	"bizhub-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Checkout slots left unconsumed longer than this are abandoned orders.
const staleSlotAge = 7 * 24 * time.Hour

// CleanupService purges abandoned checkout slots and expired password
// reset tokens on a daily schedule.
type CleanupService struct {
	db *gorm.DB
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{db: db}
}

func (s *CleanupService) StartScheduler() {
	c := cron.New()

	// Run every day at 3 AM
	if _, err := c.AddFunc("0 3 * * *", s.Run); err != nil {
		log.Printf("cleanup: failed to schedule: %v", err)
		return
	}

	c.Start()
	log.Println("Cleanup scheduler started")
}

// Run performs one cleanup pass.
func (s *CleanupService) Run() {
	log.Println("Starting cleanup pass...")

	cutoff := utils.BeginningOfDay(time.Now().Add(-staleSlotAge))

	result := s.db.Where("key IN ? AND updated_at < ?",
		[]string{storage.KeyPendingRequest, storage.KeyRequestForPayment}, cutoff).
		Delete(&models.StateRecord{})
	if result.Error != nil {
		log.Printf("cleanup: failed to purge stale slots: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("cleanup: purged %d stale checkout slots", result.RowsAffected)
	}

	if err := s.db.Model(&models.User{}).
		Where("reset_token_expiry IS NOT NULL AND reset_token_expiry < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token":        nil,
			"reset_token_expiry": nil,
		}).Error; err != nil {
		log.Printf("cleanup: failed to clear expired reset tokens: %v", err)
	}

	log.Println("Cleanup pass completed")
}
