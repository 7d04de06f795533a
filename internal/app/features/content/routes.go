// internal/app/features/content/routes.go
package content

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the static content endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Features)
	return r
}
