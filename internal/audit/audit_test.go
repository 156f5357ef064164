package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestJSONWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), Event{
		Timestamp:    time.Now(),
		EventType:    EventLogin,
		Email:        "user@example.com",
		UserID:       "user1",
		Success:      true,
		TokenPreview: "deadbeef",
	})

	line := strings.TrimSpace(buf.String())
	var decoded Event
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("sink output is not valid JSON: %v", err)
	}
	if decoded.EventType != EventLogin || decoded.UserID != "user1" || !decoded.Success {
		t.Errorf("decoded event = %+v, want login success for user1", decoded)
	}
	if decoded.TokenPreview != "deadbeef" {
		t.Errorf("TokenPreview = %q, want deadbeef", decoded.TokenPreview)
	}
}

func TestJSONWriterSinkNilWriter(t *testing.T) {
	sink := NewJSONWriterSink(nil)
	// must not panic
	sink.Emit(context.Background(), Event{EventType: EventLogin})
}

func TestTokenPreview(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "long token truncated", token: "0123456789abcdef", want: "01234567"},
		{name: "short token unchanged", token: "abc", want: "abc"},
		{name: "empty token", token: "", want: ""},
		{name: "exactly eight", token: "12345678", want: "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenPreview(tt.token); got != tt.want {
				t.Errorf("TokenPreview(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
