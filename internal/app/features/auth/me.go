// internal/app/features/auth/me.go
package authfeature

import (
	"net/http"

	"github.com/harmonyhealth/harmony/internal/app/system/auth"
	"github.com/harmonyhealth/harmony/internal/app/system/token"
)

// Me handles GET /api/auth/me. The bearer token is verified here rather
// than in middleware so the endpoint can distinguish a bad token (401)
// from a token whose account no longer exists (404).
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	raw := auth.BearerToken(r)
	if raw == "" {
		h.writeServiceError(w, "me", token.ErrInvalidToken)
		return
	}

	claims, err := h.Svc.Authenticate(raw)
	if err != nil {
		h.writeServiceError(w, "me", err)
		return
	}

	user, err := h.Svc.CurrentUser(r.Context(), claims)
	if err != nil {
		h.writeServiceError(w, "me", err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}
