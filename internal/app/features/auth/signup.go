// internal/app/features/auth/signup.go
package authfeature

import (
	"encoding/json"
	"net/http"
)

type signupRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Role     string         `json:"role"`
	Profile  map[string]any `json:"profile"`
}

// Signup handles POST /api/auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	user, tok, err := h.Svc.Signup(r.Context(), req.Email, req.Password, req.Role, req.Profile)
	if err != nil {
		h.writeServiceError(w, "signup", err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{User: user, Token: tok})
}
