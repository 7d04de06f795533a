// internal/app/features/organizations/handler.go

// Package orgfeature serves the organization picker shown on the signup
// page. The list endpoint never fails: the store falls back to its seed
// list when the backend is unreachable.
package orgfeature

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	orgstore "github.com/harmonyhealth/harmony/internal/app/store/organizations"
)

// Handler serves the organization endpoints.
type Handler struct {
	Orgs orgstore.Store
	Log  *zap.Logger
}

// NewHandler constructs the organizations Handler.
func NewHandler(orgs orgstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Orgs: orgs, Log: logger}
}

// listEntry is the trimmed shape the signup picker needs.
type listEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List handles GET /api/organizations.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Orgs.List(r.Context())
	if err != nil {
		// The store contract degrades to the seed list on backend failure,
		// so an error here means a bug; the picker still gets a usable list.
		h.Log.Error("organization list failed", zap.Error(err))
		orgs = orgstore.SeedFallback()
	}

	entries := make([]listEntry, 0, len(orgs))
	for _, o := range orgs {
		entries = append(entries, listEntry{ID: o.ID, Name: o.Name})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string][]listEntry{"organizations": entries})
}
