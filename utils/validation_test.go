package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+254712345678"))
	assert.True(t, ValidatePhone("(254) 712-345-678"))
	assert.False(t, ValidatePhone("0712 345 678")) // leading zero, no country code
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("+0123"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john@example.com", NormalizeEmail("John@Example.com"))
	assert.Equal(t, "john@example.com", NormalizeEmail("  john@example.com  "))
	assert.Equal(t, "john@example.com", NormalizeEmail("JOHN@EXAMPLE.COM"))
}

// A user must be able to log in with the exact address they registered:
// whatever casing either form arrives in, the stored form and the
// lookup form are identical.
func TestNormalizeEmailRegisterLoginAgree(t *testing.T) {
	registered := []string{"John@Example.com", "john@example.com", " John@example.COM "}
	for _, reg := range registered {
		for _, login := range registered {
			assert.Equal(t, NormalizeEmail(reg), NormalizeEmail(login),
				"registered %q, login %q", reg, login)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("changeme1"))
	assert.False(t, ValidatePassword("short1"))
	assert.False(t, ValidatePassword("lettersonly"))
	assert.False(t, ValidatePassword("12345678"))
}

func TestGenerateReferenceNumber(t *testing.T) {
	ref := GenerateReferenceNumber("REQ")

	parts := strings.Split(ref, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "REQ", parts[0])
	assert.Len(t, parts[1], 14) // timestamp
	assert.Len(t, parts[2], 6)  // random suffix
}

func TestGenerateRandomStringLength(t *testing.T) {
	assert.Len(t, GenerateRandomString(6), 6)
	assert.Len(t, GenerateRandomString(10), 10)
}
