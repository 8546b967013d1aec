// controllers/payment.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"bizhub-backend/config"
	"bizhub-backend/models"
	"bizhub-backend/services"
	"bizhub-backend/storage"
	"bizhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	paymentSvc     *services.PaymentService
	paymentSvcOnce sync.Once
)

func paymentService() *services.PaymentService {
	paymentSvcOnce.Do(func() {
		paymentSvc = services.NewPaymentService(config.DB)
	})
	return paymentSvc
}

// GetStagedPayment returns the order staged by the request step, if
// any. The slot survives page reloads and is cleared on successful
// payment.
func GetStagedPayment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var staged map[string]interface{}
	store := storage.NewGormStore(config.DB)
	if err := store.Load(c.Request.Context(), userID.(string), storage.KeyRequestForPayment, &staged); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No order staged for payment")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read staged order")
		}
		return
	}

	c.JSON(http.StatusOK, staged)
}

// CreatePayment submits one payment. Validation failures and processing
// failures both answer with success=false and a user-visible message;
// the form stays open for an explicit resubmission either way.
func CreatePayment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input services.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid input: " + err.Error(),
		})
		return
	}

	payment, err := paymentService().Submit(userUUID, input)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   validationErr.Message,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	// Payment went through; clear the staged order and mark the request
	// paid when one is linked.
	store := storage.NewGormStore(config.DB)
	if err := store.Delete(c.Request.Context(), userID.(string), storage.KeyRequestForPayment); err != nil {
		log.Printf("payment: failed to clear staged order: %v", err)
	}
	if input.RequestID != nil {
		if err := config.DB.Model(&models.ServiceRequest{}).
			Where("id = ? AND user_id = ?", *input.RequestID, userUUID).
			Update("status", "paid").Error; err != nil {
			log.Printf("payment: failed to mark request %s paid: %v", *input.RequestID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"payment": payment,
	})
}

// GetPayments lists the caller's payments, newest first.
func GetPayments(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}
