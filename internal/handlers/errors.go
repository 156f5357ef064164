package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// loginResponse is the body for /api/login
type loginResponse struct {
	Success   bool   `json:"success"`
	CSRFToken string `json:"csrfToken,omitempty"`
	Error     string `json:"error,omitempty"`
}

// actionResponse is the body for protected actions like /api/posts
type actionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// respondJSON writes a JSON body with the given status.
// Failures are reported with a body-level success flag, not an HTTP error,
// so every outcome is a well-formed 200 response.
func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
