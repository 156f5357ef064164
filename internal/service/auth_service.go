package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tariq235/csrf-protection-example/internal/audit"
	"github.com/tariq235/csrf-protection-example/internal/models"
	"github.com/tariq235/csrf-protection-example/internal/security"
	"github.com/tariq235/csrf-protection-example/internal/session"
	"github.com/tariq235/csrf-protection-example/internal/token"
)

// UserDirectory resolves accounts by email. It is the only view of
// credential storage the auth flow gets.
type UserDirectory interface {
	GetUserByEmail(email string) (*models.User, error)
}

// AuthService authenticates credentials and mints CSRF tokens.
// A successful login is the only path that writes the session store.
type AuthService struct {
	directory UserDirectory
	store     session.Store
	verifier  security.Verifier
	sink      audit.Sink
}

// NewAuthService creates a new auth service. A nil sink disables auditing.
func NewAuthService(directory UserDirectory, store session.Store, verifier security.Verifier, sink audit.Sink) *AuthService {
	if sink == nil {
		sink = audit.NoOpSink{}
	}
	return &AuthService{
		directory: directory,
		store:     store,
		verifier:  verifier,
		sink:      sink,
	}
}

// Login authenticates email/password and, on success, stores and returns a
// fresh CSRF token. A repeat login replaces the user's previous token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		s.auditLogin(ctx, email, "", "", ErrMissingCredentials)
		return "", ErrMissingCredentials
	}

	user, err := s.directory.GetUserByEmail(email)
	if err != nil {
		s.auditLogin(ctx, email, "", "", err)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	// Unknown email and wrong password take the same path so the two are
	// indistinguishable to the caller
	if user == nil || !s.verifier.Verify(user.PasswordHash, password) {
		s.auditLogin(ctx, email, "", "", ErrInvalidCredentials)
		return "", ErrInvalidCredentials
	}

	csrfToken, err := token.GenerateDefault()
	if err != nil {
		s.auditLogin(ctx, email, user.ID, "", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.store.Put(ctx, user.ID, csrfToken); err != nil {
		s.auditLogin(ctx, email, user.ID, "", err)
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	s.auditLogin(ctx, email, user.ID, csrfToken, nil)
	return csrfToken, nil
}

func (s *AuthService) auditLogin(ctx context.Context, email, userID, csrfToken string, loginErr error) {
	event := audit.Event{
		Timestamp:    time.Now(),
		EventType:    audit.EventLogin,
		Email:        email,
		UserID:       userID,
		Success:      loginErr == nil,
		TokenPreview: audit.TokenPreview(csrfToken),
	}
	if loginErr != nil {
		event.Error = loginErr.Error()
	}
	s.sink.Emit(ctx, event)
}
