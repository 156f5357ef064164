package service

import "errors"

// Failure kinds surfaced to callers. Each maps to one stable user-facing
// message via UserMessage; nothing here ever terminates the process.
var (
	// ErrMissingCredentials is returned when email or password is empty
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// which are deliberately indistinguishable
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingPostFields is returned when title or content is empty
	ErrMissingPostFields = errors.New("title and content are required")

	// ErrInvalidToken covers both an absent session and a wrong token,
	// which are deliberately indistinguishable
	ErrInvalidToken = errors.New("invalid CSRF token")
)

// UserMessage translates a service error into its documented user-facing
// string. Unrecognized errors get a generic message so internal details
// never leak to clients.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return "Email and password are required"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrMissingPostFields):
		return "Title and content are required"
	case errors.Is(err, ErrInvalidToken):
		return "Invalid CSRF token"
	default:
		return "Internal server error"
	}
}
