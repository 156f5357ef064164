package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tariq235/csrf-protection-example/internal/service"
)

// CSRFTokenHeader carries the token on state-changing requests. A body
// field is accepted as a fallback; cookies are never consulted, which is
// what makes the token proof of a deliberate client action.
const CSRFTokenHeader = "X-CSRF-Token"

// PostHandler handles post creation HTTP requests
type PostHandler struct {
	postService *service.PostService

	// userID is the identity protected actions run as. The demo has no
	// server-side login session; a real deployment would resolve the user
	// from an authenticated session instead.
	userID string
}

// NewPostHandler creates a new post handler acting as userID
func NewPostHandler(postService *service.PostService, userID string) *PostHandler {
	return &PostHandler{postService: postService, userID: userID}
}

type createPostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CSRFToken string `json:"csrfToken"`
}

// Create handles POST /api/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusOK, actionResponse{
			Success: false,
			Error:   service.UserMessage(service.ErrMissingPostFields),
		})
		return
	}

	// Header wins over the body field
	csrfToken := r.Header.Get(CSRFTokenHeader)
	if csrfToken == "" {
		csrfToken = req.CSRFToken
	}

	if _, err := h.postService.Create(r.Context(), h.userID, req.Title, req.Content, csrfToken); err != nil {
		respondJSON(w, http.StatusOK, actionResponse{
			Success: false,
			Error:   service.UserMessage(err),
		})
		return
	}

	respondJSON(w, http.StatusOK, actionResponse{Success: true})
}
