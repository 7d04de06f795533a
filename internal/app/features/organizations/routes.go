// internal/app/features/organizations/routes.go
package orgfeature

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the organization endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
