package models

import "time"

// User represents an account in the user directory
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// SessionEntry binds a user to their currently valid CSRF token
// At most one entry exists per user; a later login replaces it
type SessionEntry struct {
	UserID string
	Token  string
}
