// internal/app/features/auth/routes.go
package authfeature

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the credential endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Get("/me", h.Me)
	r.Post("/logout", h.Logout)
	return r
}
