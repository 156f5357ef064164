package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tariq235/csrf-protection-example/internal/audit"
	"github.com/tariq235/csrf-protection-example/internal/config"
	"github.com/tariq235/csrf-protection-example/internal/database"
	"github.com/tariq235/csrf-protection-example/internal/handlers"
	"github.com/tariq235/csrf-protection-example/internal/repository"
	"github.com/tariq235/csrf-protection-example/internal/security"
	"github.com/tariq235/csrf-protection-example/internal/service"
	"github.com/tariq235/csrf-protection-example/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the user directory database (sqlite, postgres or mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	if err := seedDemoUser(userRepo, cfg.DemoUserID); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	// Select the session store. Memory is single-instance only; redis is
	// required when running more than one replica.
	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	log.Printf("Session store: %s", cfg.SessionStore)

	verifier, err := security.NewVerifier(cfg.CredentialScheme)
	if err != nil {
		log.Fatalf("Failed to initialize credential verifier: %v", err)
	}

	sink, closeSink, err := newAuditSink(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize audit sink: %v", err)
	}
	defer closeSink()

	// Initialize services
	authService := service.NewAuthService(userRepo, store, verifier, sink)
	csrfService := service.NewCSRFService(store, sink)
	postService := service.NewPostService(postRepo, csrfService, sink)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, cfg.DemoUserID)
	loginLimiter := security.NewRateLimiter(10, time.Minute)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", handlers.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("POST /api/posts", postHandler.Create)
	mux.HandleFunc("GET /healthz", handlers.Health)

	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// newSessionStore builds the configured session.Store implementation
func newSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.SessionStore {
	case "redis":
		client, err := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, cfg.SessionTTL), nil
	default:
		return session.NewMemoryStore(), nil
	}
}

// newAuditSink writes JSON audit lines to stdout or a configured file
func newAuditSink(cfg *config.Config) (audit.Sink, func(), error) {
	if cfg.AuditLogPath == "" {
		return audit.NewJSONWriterSink(os.Stdout), func() {}, nil
	}

	f, err := os.OpenFile(cfg.AuditLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return audit.NewJSONWriterSink(f), func() { _ = f.Close() }, nil
}

// seedDemoUser ensures the built-in demo account exists
func seedDemoUser(users *repository.UserRepository, id string) error {
	existing, err := users.GetUserByEmail("user@example.com")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	// Stored as plaintext to match the plaintext credential scheme; switch
	// CREDENTIAL_SCHEME to bcrypt and store a hash for anything beyond a demo
	_, err = users.CreateUser(id, "user@example.com", "password123", "Demo User")
	return err
}
