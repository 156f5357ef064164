// Package security holds credential comparison and token equality.
// Both use constant-time comparisons so mismatch position never shows up
// in response timing.
package security

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a presented password against the stored credential.
// The auth flow only sees this interface, so the comparison strategy can
// change without touching login control flow.
type Verifier interface {
	Verify(storedCredential, presentedPassword string) bool
}

// PlaintextVerifier compares credentials stored as plaintext, as the demo
// user directory does. It exists behind the Verifier interface precisely so
// it can be retired.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(storedCredential, presentedPassword string) bool {
	return subtle.ConstantTimeCompare([]byte(storedCredential), []byte(presentedPassword)) == 1
}

// BcryptVerifier compares a presented password against a bcrypt hash
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(storedCredential, presentedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedCredential), []byte(presentedPassword)) == nil
}

// HashPassword produces a bcrypt hash for storage in the user directory
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// NewVerifier returns the verifier for a configured credential scheme
func NewVerifier(scheme string) (Verifier, error) {
	switch scheme {
	case "plaintext", "":
		return PlaintextVerifier{}, nil
	case "bcrypt":
		return BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("unsupported credential scheme: %s", scheme)
	}
}

// TokensEqual reports whether a presented CSRF token matches the stored one.
// Full-value, case-sensitive, constant-time; no prefix credit.
func TokensEqual(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
