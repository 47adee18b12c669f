// internal/app/features/contact/routes.go
package contact

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /api/v1/contact.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Contact card (singleton)
	r.Get("/", h.GetInfo)
	r.Put("/", h.UpsertInfo)
	r.Get("/all", h.ListInfo)

	// Contact-form message inbox
	r.Route("/messages", func(r chi.Router) {
		r.Get("/", h.ListMessages)
		r.Post("/", h.CreateMessage)
		r.Get("/{id}", h.GetMessage)
		r.Put("/{id}", h.UpdateMessage)
		r.Delete("/{id}", h.DeleteMessage)
	})

	return r
}
