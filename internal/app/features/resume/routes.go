// internal/app/features/resume/routes.go
package resume

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/v1/resume.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/experience", func(r chi.Router) {
		r.Get("/", h.ListExperience)
		r.Post("/", h.CreateExperience)
		r.Get("/{id}", h.GetExperience)
		r.Put("/{id}", h.UpdateExperience)
		r.Delete("/{id}", h.DeleteExperience)
	})

	r.Route("/education", func(r chi.Router) {
		r.Get("/", h.ListEducation)
		r.Post("/", h.CreateEducation)
		r.Get("/{id}", h.GetEducation)
		r.Put("/{id}", h.UpdateEducation)
		r.Delete("/{id}", h.DeleteEducation)
	})

	r.Route("/skills", func(r chi.Router) {
		r.Get("/", h.ListSkills)
		r.Post("/", h.CreateSkill)
		r.Get("/{id}", h.GetSkill)
		r.Put("/{id}", h.UpdateSkill)
		r.Delete("/{id}", h.DeleteSkill)
	})

	r.Route("/certifications", func(r chi.Router) {
		r.Get("/", h.ListCertifications)
		r.Post("/", h.CreateCertification)
		r.Get("/{id}", h.GetCertification)
		r.Put("/{id}", h.UpdateCertification)
		r.Delete("/{id}", h.DeleteCertification)
	})

	r.Get("/about", h.GetAbout)
	r.Put("/about", h.UpsertAbout)

	return r
}
