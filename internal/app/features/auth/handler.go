// internal/app/features/auth/handler.go
package authfeature

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	userstore "github.com/harmonyhealth/harmony/internal/app/store/users"
	"github.com/harmonyhealth/harmony/internal/app/system/credentials"
	"github.com/harmonyhealth/harmony/internal/app/system/token"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

// Handler serves the credential endpoints: signup, login, me, logout.
type Handler struct {
	Svc *credentials.Service
	Log *zap.Logger
}

// NewHandler constructs the auth Handler.
func NewHandler(svc *credentials.Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

// sessionResponse is the body returned by signup and login.
type sessionResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type userResponse struct {
	User models.User `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeServiceError maps a credentials error to its stable status and
// machine-checkable code. Internal causes are logged, never leaked.
func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, credentials.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, "validation_error", "email and password required")
	case errors.Is(err, credentials.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, "validation_error", "invalid role")
	case errors.Is(err, userstore.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "already_exists", "user already exists")
	case errors.Is(err, credentials.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	case errors.Is(err, token.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid or missing token")
	case errors.Is(err, userstore.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "user not found")
	default:
		h.Log.Error(op+" failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server_error", op+" failed")
	}
}
