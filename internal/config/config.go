package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort string

	// DatabaseType selects the user directory backend: sqlite (default), postgres or mysql
	DatabaseType string
	DatabaseURL  string
	DatabasePath string

	// SessionStore selects where CSRF tokens live: "memory" (single instance
	// only - sessions are instance-sticky) or "redis" (shared across replicas).
	// Running more than one instance with the memory store will randomly reject
	// valid tokens, so redis is required for any multi-instance deployment.
	SessionStore  string
	RedisAddr     string
	RedisPassword string

	// SessionTTL bounds how long a stored token survives in Redis. Zero keeps
	// the baseline behavior: tokens never expire server-side.
	SessionTTL time.Duration

	// CredentialScheme selects how stored credentials are compared:
	// "plaintext" (demo parity) or "bcrypt"
	CredentialScheme string

	// DemoUserID is the identity protected actions are attributed to.
	// A real deployment would resolve this from an authenticated session.
	DemoUserID string

	AuditLogPath string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("PORT", "8080"),
		DatabaseType:     getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:      getEnv("DB_URL", ""),
		DatabasePath:     getEnv("DB_PATH", "./csrf-demo.db"),
		SessionStore:     getEnv("SESSION_STORE", "memory"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		SessionTTL:       getDurationEnv("SESSION_TTL_SECONDS", 0),
		CredentialScheme: getEnv("CREDENTIAL_SCHEME", "plaintext"),
		DemoUserID:       getEnv("DEMO_USER_ID", "user1"),
		AuditLogPath:     getEnv("AUDIT_LOG_PATH", ""),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv reads a duration in seconds or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
