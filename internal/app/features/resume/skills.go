// internal/app/features/resume/skills.go
package resume

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/folio/internal/app/store/storeerr"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ListSkills handles GET /api/v1/resume/skills.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Skills.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch skills")
		return
	}
	h.Respond.OK(w, "Skills fetched successfully", docs)
}

// GetSkill handles GET /api/v1/resume/skills/{id}.
func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid skill ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Skills.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Skill not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch skill")
		return
	}
	h.Respond.OK(w, "Skill fetched successfully", doc)
}

// CreateSkill handles POST /api/v1/resume/skills.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var in createSkillInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create skill")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create skill")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Skills.Insert(ctx, in.model())
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create skill")
		return
	}
	h.Respond.Created(w, "Skill created successfully", created)
}

// UpdateSkill handles PUT /api/v1/resume/skills/{id}.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid skill ID format"), "")
		return
	}

	var in updateSkillInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update skill")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update skill")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Skills.UpdateByID(ctx, oid, in.set())
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Skill not found")
		}
		h.Respond.Fail(w, r, err, "Failed to update skill")
		return
	}
	h.Respond.OK(w, "Skill updated successfully", updated)
}

// DeleteSkill handles DELETE /api/v1/resume/skills/{id}.
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid skill ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Skills.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Skill not found")
		}
		h.Respond.Fail(w, r, err, "Failed to delete skill")
		return
	}
	h.Respond.OK(w, "Skill deleted successfully", nil)
}
