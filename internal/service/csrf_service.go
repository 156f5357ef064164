package service

import (
	"context"
	"log"
	"time"

	"github.com/tariq235/csrf-protection-example/internal/audit"
	"github.com/tariq235/csrf-protection-example/internal/security"
	"github.com/tariq235/csrf-protection-example/internal/session"
)

// CSRFService verifies presented tokens against the session store.
// It never mutates the store.
type CSRFService struct {
	store session.Store
	sink  audit.Sink
}

// NewCSRFService creates a new validation service. A nil sink disables auditing.
func NewCSRFService(store session.Store, sink audit.Sink) *CSRFService {
	if sink == nil {
		sink = audit.NoOpSink{}
	}
	return &CSRFService{store: store, sink: sink}
}

// Validate reports whether presentedToken is the current token for userID.
// "Never logged in", "wrong token" and a failing store all come back as
// false; the caller cannot tell which occurred.
func (s *CSRFService) Validate(ctx context.Context, userID, presentedToken string) bool {
	entry, err := s.store.Get(ctx, userID)
	if err != nil {
		// Deny on store failure rather than letting an unverifiable token through
		log.Printf("csrf: session store read failed for user %s: %v", userID, err)
		s.auditValidate(ctx, userID, presentedToken, false)
		return false
	}

	valid := entry != nil && security.TokensEqual(entry.Token, presentedToken)
	s.auditValidate(ctx, userID, presentedToken, valid)
	return valid
}

func (s *CSRFService) auditValidate(ctx context.Context, userID, presentedToken string, valid bool) {
	event := audit.Event{
		Timestamp:    time.Now(),
		EventType:    audit.EventCSRFValidate,
		UserID:       userID,
		Success:      valid,
		TokenPreview: audit.TokenPreview(presentedToken),
	}
	if !valid {
		event.Error = ErrInvalidToken.Error()
	}
	s.sink.Emit(ctx, event)
}
