package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tariq235/csrf-protection-example/internal/audit"
	"github.com/tariq235/csrf-protection-example/internal/models"
)

// PostWriter persists created posts
type PostWriter interface {
	CreatePost(id, title, content, userID string) (*models.Post, error)
}

// PostService is the representative protected action: creating a post
// requires a valid CSRF token for the acting user.
type PostService struct {
	posts PostWriter
	csrf  *CSRFService
	sink  audit.Sink
}

// NewPostService creates a new post service. A nil sink disables auditing.
func NewPostService(posts PostWriter, csrf *CSRFService, sink audit.Sink) *PostService {
	if sink == nil {
		sink = audit.NoOpSink{}
	}
	return &PostService{posts: posts, csrf: csrf, sink: sink}
}

// Create validates input and CSRF token, then persists the post
func (s *PostService) Create(ctx context.Context, userID, title, content, csrfToken string) (*models.Post, error) {
	if title == "" || content == "" {
		s.auditCreate(ctx, userID, ErrMissingPostFields)
		return nil, ErrMissingPostFields
	}

	if !s.csrf.Validate(ctx, userID, csrfToken) {
		s.auditCreate(ctx, userID, ErrInvalidToken)
		return nil, ErrInvalidToken
	}

	post, err := s.posts.CreatePost(uuid.NewString(), title, content, userID)
	if err != nil {
		s.auditCreate(ctx, userID, err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.auditCreate(ctx, userID, nil)
	return post, nil
}

func (s *PostService) auditCreate(ctx context.Context, userID string, createErr error) {
	event := audit.Event{
		Timestamp: time.Now(),
		EventType: audit.EventPostCreate,
		UserID:    userID,
		Success:   createErr == nil,
	}
	if createErr != nil {
		event.Error = createErr.Error()
	}
	s.sink.Emit(ctx, event)
}
