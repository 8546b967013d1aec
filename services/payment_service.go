// services/payment_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"bizhub-backend/models"
	"bizhub-backend/utils"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// PaymentInput is the payload accepted by the payment endpoint.
// Method-specific fields are validated locally and never persisted.
type PaymentInput struct {
	ServiceType   string  `json:"service_type" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Description   string  `json:"description"`
	PhoneNumber   string  `json:"phone_number"`

	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
	CardHolder string `json:"card_holder"`
	BankName   string `json:"bank_name"`

	RequestID *uuid.UUID `json:"request_id"`
}

// ValidationError is a local, pre-persistence rejection. The message is
// user-visible and the submission performs no write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Fixed backend vocabularies. Unknown service types collapse to
// "other" rather than being rejected.
var serviceTypeVocab = map[string]string{
	"kra":      "kra_services",
	"data":     "data_analytics",
	"business": "business_registration",
	"other":    "other",
}

var paymentMethodVocab = map[string]string{
	"mpesa": "mpesa",
	"card":  "card",
	"bank":  "bank_transfer",
}

// NormalizeServiceType maps a category tag to the stored vocabulary.
func NormalizeServiceType(t string) string {
	if v, ok := serviceTypeVocab[t]; ok {
		return v
	}
	return "other"
}

// NormalizeMethod maps a payment method to the stored vocabulary; ok is
// false for unknown methods.
func NormalizeMethod(m string) (string, bool) {
	v, ok := paymentMethodVocab[m]
	return v, ok
}

// ValidatePaymentInput runs the method-specific field checks performed
// before anything is persisted: phone number for mobile money, the full
// card set for card payments, bank name for bank transfers.
func ValidatePaymentInput(input PaymentInput) error {
	if input.Amount <= 0 {
		return &ValidationError{Message: "Amount must be greater than zero"}
	}

	if _, ok := NormalizeMethod(input.PaymentMethod); !ok {
		return &ValidationError{Message: "Unsupported payment method: " + input.PaymentMethod}
	}

	switch input.PaymentMethod {
	case "mpesa":
		if input.PhoneNumber == "" {
			return &ValidationError{Message: "Phone number is required for M-Pesa payments"}
		}
		if !utils.ValidatePhone(input.PhoneNumber) {
			return &ValidationError{Message: "Invalid phone number format"}
		}
	case "card":
		if input.CardNumber == "" || input.CardExpiry == "" || input.CardCVV == "" || input.CardHolder == "" {
			return &ValidationError{Message: "Card number, expiry, CVV and holder name are required"}
		}
	case "bank":
		if input.BankName == "" {
			return &ValidationError{Message: "Bank name is required for bank transfers"}
		}
	}

	return nil
}

// PaymentService runs the dispatch flow: validate, persist, simulate
// gateway processing, confirm. Failed submissions keep their record
// with a failed status so the user can resubmit.
type PaymentService struct {
	db              *gorm.DB
	twilio          *twilio.RestClient
	fromNumber      string
	processingDelay time.Duration
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	delay := 2000 * time.Millisecond
	if env := os.Getenv("PAYMENT_PROCESSING_DELAY_MS"); env != "" {
		if ms, err := strconv.Atoi(env); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}

	return &PaymentService{
		db: db,
		twilio: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: os.Getenv("TWILIO_ACCOUNT_SID"),
			Password: os.Getenv("TWILIO_AUTH_TOKEN"),
		}),
		fromNumber:      os.Getenv("TWILIO_PHONE_NUMBER"),
		processingDelay: delay,
	}
}

// Submit validates and processes one payment. A *ValidationError means
// nothing was written; any other error left a failed payment record
// behind. There is no automatic retry.
func (s *PaymentService) Submit(userID uuid.UUID, input PaymentInput) (*models.Payment, error) {
	if err := ValidatePaymentInput(input); err != nil {
		return nil, err
	}

	method, _ := NormalizeMethod(input.PaymentMethod)
	payment := models.Payment{
		UserID:        userID,
		RequestID:     input.RequestID,
		ServiceType:   NormalizeServiceType(input.ServiceType),
		Amount:        input.Amount,
		PaymentMethod: method,
		PhoneNumber:   input.PhoneNumber,
		Description:   input.Description,
		Status:        models.PaymentStatusProcessing,
		Reference:     utils.GenerateReferenceNumber("PAY"),
	}

	if err := s.db.Create(&payment).Error; err != nil {
		log.Printf("payment: failed to create record: %v", err)
		return nil, fmt.Errorf("payment processing failed, please try again")
	}

	// Simulated gateway processing window
	time.Sleep(s.processingDelay)

	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.PaymentStatusCompleted,
		"completed_at": &now,
	}
	if err := s.db.Model(&payment).Updates(updates).Error; err != nil {
		s.markFailed(&payment, "confirmation could not be recorded")
		return nil, fmt.Errorf("payment processing failed, please try again")
	}
	payment.Status = models.PaymentStatusCompleted
	payment.CompletedAt = &now

	s.notifyCompleted(&payment)

	if payment.PaymentMethod == "mpesa" {
		go s.sendConfirmationSMS(&payment)
	}

	return &payment, nil
}

func (s *PaymentService) markFailed(payment *models.Payment, reason string) {
	payment.Status = models.PaymentStatusFailed
	payment.ErrorMessage = reason
	if err := s.db.Model(payment).Updates(map[string]interface{}{
		"status":        models.PaymentStatusFailed,
		"error_message": reason,
	}).Error; err != nil {
		log.Printf("payment: failed to mark payment %s failed: %v", payment.ID, err)
	}
}

func (s *PaymentService) notifyCompleted(payment *models.Payment) {
	notification := models.Notification{
		UserID:  payment.UserID,
		Title:   "Payment received",
		Message: fmt.Sprintf("Your payment of KES %.2f (ref %s) was received and is being processed.", payment.Amount, payment.Reference),
		Type:    "payment",
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("payment: failed to create notification: %v", err)
	}
}

func (s *PaymentService) sendConfirmationSMS(payment *models.Payment) {
	if s.fromNumber == "" || payment.PhoneNumber == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(payment.PhoneNumber)
	params.SetFrom(s.fromNumber)
	params.SetBody(fmt.Sprintf("Payment of KES %.2f received. Ref: %s. Thank you.", payment.Amount, payment.Reference))

	if _, err := s.twilio.Api.CreateMessage(params); err != nil {
		log.Printf("payment: confirmation SMS for %s failed: %v", payment.Reference, err)
	}
}
