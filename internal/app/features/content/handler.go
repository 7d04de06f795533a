// internal/app/features/content/handler.go

// Package content serves the static marketing content consumed by the
// public site: the feature cards shown on the landing page.
package content

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Feature is one landing-page feature card. Icon names the client-side
// icon the frontend renders.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// landingFeatures is the fixed card set for the marketing site.
var landingFeatures = []Feature{
	{
		Icon:        "Users",
		Title:       "Supportive Community",
		Description: "Connect with others who understand your journey in a safe, moderated environment.",
	},
	{
		Icon:        "MessageCircle",
		Title:       "Peer Support Groups",
		Description: "Join topic-based groups led by trained facilitators.",
	},
	{
		Icon:        "BookOpen",
		Title:       "Wellness Resources",
		Description: "Access a curated library of articles, exercises, and self-help tools.",
	},
	{
		Icon:        "Shield",
		Title:       "Privacy & Safety",
		Description: "Your data stays private. Conversations are confidential by default.",
	},
}

// Handler serves the static content endpoints.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs the content Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// Features handles GET /api/features.
func (h *Handler) Features(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string][]Feature{"features": landingFeatures})
}
