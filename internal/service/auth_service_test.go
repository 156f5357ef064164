package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/tariq235/csrf-protection-example/internal/audit"
	"github.com/tariq235/csrf-protection-example/internal/models"
	"github.com/tariq235/csrf-protection-example/internal/security"
	"github.com/tariq235/csrf-protection-example/internal/session"
)

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// fakeDirectory is an in-memory user directory keyed by email
type fakeDirectory struct {
	users map[string]*models.User
	err   error
}

func (d *fakeDirectory) GetUserByEmail(email string) (*models.User, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.users[email], nil
}

// recordingSink collects emitted audit events for inspection
type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Emit(_ context.Context, event audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) all() []audit.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]audit.Event(nil), s.events...)
}

func newTestAuth(t *testing.T) (*AuthService, *session.MemoryStore, *recordingSink) {
	t.Helper()

	directory := &fakeDirectory{users: map[string]*models.User{
		"user@example.com": {ID: "user1", Email: "user@example.com", PasswordHash: "password123"},
	}}
	store := session.NewMemoryStore()
	sink := &recordingSink{}
	return NewAuthService(directory, store, security.PlaintextVerifier{}, sink), store, sink
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	auth, store, _ := newTestAuth(t)

	tok, err := auth.Login(ctx, "user@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !tokenPattern.MatchString(tok) {
		t.Errorf("Login() token = %q, want 64 lowercase hex characters", tok)
	}

	entry, err := store.Get(ctx, "user1")
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	if entry == nil || entry.Token != tok {
		t.Errorf("stored entry = %+v, want the returned token", entry)
	}
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "empty email", email: "", password: "password123", wantErr: ErrMissingCredentials},
		{name: "empty password", email: "user@example.com", password: "", wantErr: ErrMissingCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "password123", wantErr: ErrInvalidCredentials},
		{name: "wrong password", email: "user@example.com", password: "wrong", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			auth, store, _ := newTestAuth(t)

			tok, err := auth.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tok != "" {
				t.Errorf("Login() token = %q, want empty on failure", tok)
			}

			// No session entry may be created or replaced on failure
			if store.Len() != 0 {
				t.Errorf("store has %d entries after failed login, want 0", store.Len())
			}
		})
	}
}

func TestLoginReplacesToken(t *testing.T) {
	ctx := context.Background()
	auth, store, _ := newTestAuth(t)

	first, err := auth.Login(ctx, "user@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	second, err := auth.Login(ctx, "user@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if first == second {
		t.Error("two logins produced the same token")
	}

	entry, err := store.Get(ctx, "user1")
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	if entry == nil || entry.Token != second {
		t.Errorf("stored token = %+v, want the second token only", entry)
	}
	if store.Len() != 1 {
		t.Errorf("store has %d entries, want 1 per user", store.Len())
	}
}

func TestLoginDirectoryError(t *testing.T) {
	ctx := context.Background()
	directory := &fakeDirectory{err: errors.New("directory unavailable")}
	auth := NewAuthService(directory, session.NewMemoryStore(), security.PlaintextVerifier{}, nil)

	_, err := auth.Login(ctx, "user@example.com", "password123")
	if err == nil {
		t.Fatal("Login() expected error from failing directory")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("Login() infrastructure failure must not masquerade as invalid credentials")
	}
}

func TestLoginAuditNeverLogsFullToken(t *testing.T) {
	ctx := context.Background()
	auth, _, sink := newTestAuth(t)

	tok, err := auth.Login(ctx, "user@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	events := sink.all()
	if len(events) == 0 {
		t.Fatal("no audit events emitted for login")
	}
	for _, event := range events {
		if event.TokenPreview == tok {
			t.Error("audit event contains the full token")
		}
		if len(event.TokenPreview) > 8 {
			t.Errorf("token preview %q longer than 8 characters", event.TokenPreview)
		}
	}

	last := events[len(events)-1]
	if !last.Success || last.Email != "user@example.com" || last.UserID != "user1" {
		t.Errorf("login audit event = %+v, want success for user1", last)
	}
	if last.TokenPreview != tok[:8] {
		t.Errorf("token preview = %q, want first 8 chars %q", last.TokenPreview, tok[:8])
	}
}

func TestLoginFailureIsAudited(t *testing.T) {
	ctx := context.Background()
	auth, _, sink := newTestAuth(t)

	_, _ = auth.Login(ctx, "user@example.com", "wrong")

	events := sink.all()
	if len(events) != 1 {
		t.Fatalf("got %d audit events, want 1", len(events))
	}
	if events[0].Success || events[0].Error == "" {
		t.Errorf("failed login audit event = %+v, want failure with reason", events[0])
	}
}
