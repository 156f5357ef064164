package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tariq235/csrf-protection-example/internal/service"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login. The CSRF token is returned in the JSON
// body, never in a cookie: the client must echo it back explicitly on
// state-changing requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusOK, loginResponse{
			Success: false,
			Error:   service.UserMessage(service.ErrMissingCredentials),
		})
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondJSON(w, http.StatusOK, loginResponse{
			Success: false,
			Error:   service.UserMessage(err),
		})
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		CSRFToken: token,
	})
}
