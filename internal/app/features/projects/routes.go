// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/v1/projects.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
