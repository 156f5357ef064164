package session

import (
	"context"
	"sync"

	"github.com/tariq235/csrf-protection-example/internal/models"
)

// MemoryStore keeps session entries in an in-process map.
// Sessions are instance-sticky: with more than one server instance the
// Redis store must be used instead.
type MemoryStore struct {
	entries map[string]models.SessionEntry
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]models.SessionEntry),
	}
}

// Put inserts or replaces the entry for userID
func (s *MemoryStore) Put(ctx context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = models.SessionEntry{UserID: userID, Token: token}
	return nil
}

// Get returns the current entry for userID, or nil when absent
func (s *MemoryStore) Get(ctx context.Context, userID string) (*models.SessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[userID]
	if !exists {
		return nil, nil
	}
	return &entry, nil
}

// Len reports how many users currently have a stored token
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
