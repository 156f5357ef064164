package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.SessionStore != "memory" {
		t.Errorf("SessionStore = %q, want memory", cfg.SessionStore)
	}
	if cfg.SessionTTL != 0 {
		t.Errorf("SessionTTL = %v, want 0 (no expiry)", cfg.SessionTTL)
	}
	if cfg.CredentialScheme != "plaintext" {
		t.Errorf("CredentialScheme = %q, want plaintext", cfg.CredentialScheme)
	}
	if cfg.DemoUserID != "user1" {
		t.Errorf("DemoUserID = %q, want user1", cfg.DemoUserID)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_TTL_SECONDS", "300")
	t.Setenv("CREDENTIAL_SCHEME", "bcrypt")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.SessionStore != "redis" {
		t.Errorf("SessionStore = %q, want redis", cfg.SessionStore)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("SessionTTL = %v, want 5m", cfg.SessionTTL)
	}
	if cfg.CredentialScheme != "bcrypt" {
		t.Errorf("CredentialScheme = %q, want bcrypt", cfg.CredentialScheme)
	}
}

func TestLoadInvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_SECONDS", "not-a-number")

	cfg := Load()
	if cfg.SessionTTL != 0 {
		t.Errorf("SessionTTL = %v, want 0 for unparseable value", cfg.SessionTTL)
	}
}
