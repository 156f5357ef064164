// Package session stores the binding between a user and their current CSRF
// token. The store is shared by all request goroutines; implementations must
// make Put an atomic replace.
package session

import (
	"context"

	"github.com/tariq235/csrf-protection-example/internal/models"
)

// Store defines how session entries are stored and retrieved.
//
// One entry per user: Put replaces any existing entry for the same user.
// Entries are never removed through this interface; logout is client-side
// token forgetting only. The Redis implementation can bound entry lifetime
// with an optional TTL.
type Store interface {
	// Put inserts or replaces the entry for userID
	Put(ctx context.Context, userID, token string) error

	// Get returns the current entry for userID, or nil when absent
	Get(ctx context.Context, userID string) (*models.SessionEntry, error)
}
