// utils/random.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

const randomChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns n random characters from A-Z0-9.
func GenerateRandomString(n int) string {
	result := make([]byte, n)
	for i := range result {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomChars))))
		if err != nil {
			// crypto/rand should not fail; fall back to a fixed char
			result[i] = 'X'
			continue
		}
		result[i] = randomChars[idx.Int64()]
	}
	return string(result)
}

// GenerateReferenceNumber builds a client-visible reference of the form
// PREFIX-20060102150405-XXXXXX. It is a display token, not a uniqueness
// guarantee; database ids stay authoritative.
func GenerateReferenceNumber(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102150405"), GenerateRandomString(6))
}

// GenerateResetToken returns a 32-byte hex token for password resets.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
