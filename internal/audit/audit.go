// Package audit is the side-channel sink for authentication and validation
// events. Events carry at most an 8-character token preview; the full token
// never reaches the sink.
package audit

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Event types emitted by the services
const (
	EventLogin        = "login"
	EventCSRFValidate = "csrf_validate"
	EventPostCreate   = "post_create"
)

// Event is a single structured audit record
type Event struct {
	Timestamp    time.Time `json:"timestamp"`
	EventType    string    `json:"event_type"`
	Email        string    `json:"email,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	TokenPreview string    `json:"token_preview,omitempty"`
}

// Sink receives emitted audit events
type Sink interface {
	Emit(ctx context.Context, event Event)
}

// NoOpSink drops audit events
type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, Event) {}

// JSONWriterSink writes one JSON object per line
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink creates a sink that writes JSON lines to w
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{writer: w}
}

func (s *JSONWriterSink) Emit(ctx context.Context, event Event) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}

// TokenPreview returns the first 8 characters of a token, safe for logging
func TokenPreview(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8]
}
