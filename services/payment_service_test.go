package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMpesaInput() PaymentInput {
	return PaymentInput{
		ServiceType:   "kra",
		Amount:        14500,
		PaymentMethod: "mpesa",
		PhoneNumber:   "+254712345678",
		Description:   "KRA services",
	}
}

func TestValidatePaymentInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PaymentInput)
		wantErr string
	}{
		{"valid mpesa", func(in *PaymentInput) {}, ""},
		{
			"zero amount",
			func(in *PaymentInput) { in.Amount = 0 },
			"Amount must be greater than zero",
		},
		{
			"negative amount",
			func(in *PaymentInput) { in.Amount = -100 },
			"Amount must be greater than zero",
		},
		{
			"unknown method",
			func(in *PaymentInput) { in.PaymentMethod = "crypto" },
			"Unsupported payment method: crypto",
		},
		{
			"mpesa without phone",
			func(in *PaymentInput) { in.PhoneNumber = "" },
			"Phone number is required for M-Pesa payments",
		},
		{
			"mpesa with bad phone",
			func(in *PaymentInput) { in.PhoneNumber = "not-a-phone" },
			"Invalid phone number format",
		},
		{
			"card without details",
			func(in *PaymentInput) {
				in.PaymentMethod = "card"
				in.CardNumber = "4111111111111111"
				// expiry, cvv, holder missing
			},
			"Card number, expiry, CVV and holder name are required",
		},
		{
			"valid card",
			func(in *PaymentInput) {
				in.PaymentMethod = "card"
				in.CardNumber = "4111111111111111"
				in.CardExpiry = "12/27"
				in.CardCVV = "123"
				in.CardHolder = "J Kamau"
			},
			"",
		},
		{
			"bank without bank name",
			func(in *PaymentInput) { in.PaymentMethod = "bank" },
			"Bank name is required for bank transfers",
		},
		{
			"valid bank",
			func(in *PaymentInput) {
				in.PaymentMethod = "bank"
				in.BankName = "Equity Bank"
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validMpesaInput()
			tt.mutate(&input)

			err := ValidatePaymentInput(input)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantErr, vErr.Message)
		})
	}
}

func TestNormalizeServiceType(t *testing.T) {
	assert.Equal(t, "kra_services", NormalizeServiceType("kra"))
	assert.Equal(t, "data_analytics", NormalizeServiceType("data"))
	assert.Equal(t, "business_registration", NormalizeServiceType("business"))
	assert.Equal(t, "other", NormalizeServiceType("other"))
	// Unknown tags collapse to other instead of failing
	assert.Equal(t, "other", NormalizeServiceType("mystery"))
}

func TestNormalizeMethod(t *testing.T) {
	method, ok := NormalizeMethod("mpesa")
	assert.True(t, ok)
	assert.Equal(t, "mpesa", method)

	method, ok = NormalizeMethod("bank")
	assert.True(t, ok)
	assert.Equal(t, "bank_transfer", method)

	_, ok = NormalizeMethod("cash")
	assert.False(t, ok)
}
