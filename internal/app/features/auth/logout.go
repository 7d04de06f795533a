// internal/app/features/auth/logout.go
package authfeature

import (
	"net/http"

	"github.com/harmonyhealth/harmony/internal/app/system/auth"
)

// Logout handles POST /api/auth/logout. Tokens are stateless, so there is
// nothing to revoke server-side; the call is acknowledged so clients can
// discard their copy, and the event is recorded when the caller is known.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if raw := auth.BearerToken(r); raw != "" {
		if claims, err := h.Svc.Authenticate(raw); err == nil {
			userID = claims.SubjectID()
		}
	}
	h.Svc.Logout(r.Context(), userID)

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
