// Package token mints opaque CSRF tokens from the operating system's
// cryptographically secure random source. There is no fallback: if the
// source fails, token generation fails.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// DefaultLength is the number of random bytes in a token (64 hex characters)
const DefaultLength = 32

// Generate returns length random bytes encoded as lowercase hex
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", length)
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read secure random source: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// GenerateDefault returns a token of DefaultLength bytes
func GenerateDefault() (string, error) {
	return Generate(DefaultLength)
}
