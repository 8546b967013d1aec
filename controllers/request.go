// controllers/request.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bizhub-backend/cart"
	"bizhub-backend/catalog"
	"bizhub-backend/config"
	"bizhub-backend/models"
	"bizhub-backend/storage"
	"bizhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsumePendingRequest hands the pending selection to the request
// form. The slot is deleted on read, so revisiting the form cannot
// duplicate the same order.
func ConsumePendingRequest(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	pending, err := cartManager().ConsumePending(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No pending service request")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read pending request")
		}
		return
	}

	c.JSON(http.StatusOK, pending)
}

// RequestItemInput is one service line on the request form. The unit
// price may have been edited at checkout for variable-price services;
// it is re-validated against the catalog here.
type RequestItemInput struct {
	Type      string  `json:"type" binding:"required"`
	ServiceID string  `json:"serviceId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"min=1"`
	UnitPrice float64 `json:"unitPrice"`
}

type SubmitRequestInput struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	CustomerEmail string             `json:"customerEmail" binding:"required,email"`
	CustomerPhone string             `json:"customerPhone" binding:"required"`
	Company       string             `json:"company"`
	TaxID         string             `json:"taxId"`
	Notes         string             `json:"notes"`
	Priority      string             `json:"priority" binding:"omitempty,oneof=normal urgent express"`
	Items         []RequestItemInput `json:"items" binding:"required,min=1"`
}

// SubmitRequest persists a finalized order and stages it for payment.
// Prices are recomputed server-side: fixed-price services always use
// the catalog price, variable-price ones clamp the submitted price to
// the catalog minimum.
func SubmitRequest(c *gin.Context) {
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

	var input SubmitRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	priority := cart.Priority(input.Priority)
	if input.Priority == "" {
		priority = cart.PriorityNormal
	}

	var totalAmount float64
	var requestItems []models.RequestItem
	category := ""

	for _, item := range input.Items {
		entry, found := catalog.Find(item.Type, item.ServiceID)
		if !found {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+item.ServiceID)
			return
		}

		unitPrice := entry.Price
		if entry.HasVariablePrice {
			unitPrice = item.UnitPrice
			floor := 0.0
			if entry.MinPrice != nil {
				floor = *entry.MinPrice
			}
			if unitPrice < floor {
				unitPrice = floor
			}
		}

		itemTotal := unitPrice * float64(item.Quantity)
		totalAmount += itemTotal

		requestItems = append(requestItems, models.RequestItem{
			ID:          uuid.New(),
			ServiceType: item.Type,
			ServiceID:   entry.ID,
			ServiceName: entry.Label,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  itemTotal,
		})

		switch category {
		case "":
			category = item.Type
		case item.Type:
		default:
			category = "other"
		}
	}

	request := models.ServiceRequest{
		ID:              uuid.New(),
		UserID:          userUUID,
		ReferenceNumber: utils.GenerateReferenceNumber("REQ"),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Company:         input.Company,
		TaxID:           input.TaxID,
		Category:        category,
		TotalAmount:     totalAmount,
		Priority:        string(priority),
		TotalWithFees:   priority.ApplyFees(totalAmount),
		Status:          "pending",
		Notes:           input.Notes,
		Items:           requestItems,
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&request).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service request")
		return
	}

	notification := models.Notification{
		UserID:  userUUID,
		Title:   "Request received",
		Message: "Your service request " + request.ReferenceNumber + " has been received.",
		Type:    "request",
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service request")
		return
	}

	// Stage the order for the payment step inside the same transaction,
	// so a failed staging rolls the whole submission back and a retry
	// cannot duplicate the order.
	if err := stageForPayment(c.Request.Context(), storage.NewGormStore(tx), userID.(string), &request); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to stage request for payment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, request)
}

// PaymentSlot is the record the request step stages for the payment
// page under the serviceRequestForPayment key.
type PaymentSlot struct {
	RequestID     uuid.UUID `json:"requestId"`
	Reference     string    `json:"reference"`
	ServiceType   string    `json:"serviceType"`
	TotalWithFees float64   `json:"totalWithFees"`
	CreatedAt     time.Time `json:"createdAt"`
}

func stageForPayment(ctx context.Context, store storage.Store, owner string, request *models.ServiceRequest) error {
	return store.Save(ctx, owner, storage.KeyRequestForPayment, PaymentSlot{
		RequestID:     request.ID,
		Reference:     request.ReferenceNumber,
		ServiceType:   request.Category,
		TotalWithFees: request.TotalWithFees,
		CreatedAt:     time.Now(),
	})
}

// GetRequests lists the caller's service requests.
func GetRequests(c *gin.Context) {
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

	var requests []models.ServiceRequest
	if err := config.DB.Preload("Items").
		Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve requests")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetRequest retrieves one of the caller's requests by ID.
func GetRequest(c *gin.Context) {
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

	requestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request ID format")
		return
	}

	var request models.ServiceRequest
	if err := config.DB.Preload("Items").
		Where("user_id = ? AND id = ?", userUUID, requestUUID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Request not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, request)
}
