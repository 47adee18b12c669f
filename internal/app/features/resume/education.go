// internal/app/features/resume/education.go
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

// ListEducation handles GET /api/v1/resume/education.
func (h *Handler) ListEducation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Education.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch education entries")
		return
	}
	h.Respond.OK(w, "Education entries fetched successfully", docs)
}

// GetEducation handles GET /api/v1/resume/education/{id}.
func (h *Handler) GetEducation(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid education ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Education.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Education entry not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch education entry")
		return
	}
	h.Respond.OK(w, "Education entry fetched successfully", doc)
}

// CreateEducation handles POST /api/v1/resume/education.
func (h *Handler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	var in createEducationInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create education entry")
		return
	}
	doc, err := in.model()
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create education entry")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Education.Insert(ctx, doc)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create education entry")
		return
	}
	h.Respond.Created(w, "Education entry created successfully", created)
}

// UpdateEducation handles PUT /api/v1/resume/education/{id}, with the
// same stored-counterpart date check as experience.
func (h *Handler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid education ID format"), "")
		return
	}

	var in updateEducationInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update education entry")
		return
	}
	set, start, end, err := in.build()
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to update education entry")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if (start != nil) != (end != nil) {
		stored, gerr := h.Education.GetByID(ctx, oid)
		if gerr != nil {
			if errors.Is(gerr, storeerr.ErrNotFound) {
				gerr = storeerr.NotFound("Education entry not found")
			}
			h.Respond.Fail(w, r, gerr, "Failed to update education entry")
			return
		}
		if start == nil && !stored.StartDate.IsZero() {
			s := stored.StartDate
			start = &s
		}
		if end == nil && !endCleared(set) && !stored.EndDate.IsZero() {
			e := stored.EndDate
			end = &e
		}
	}
	if start != nil && end != nil && !end.After(*start) {
		res := &inputval.Result{Errors: []inputval.FieldError{{
			Field: "End date", Message: "End date must be after start date.",
		}}}
		h.Respond.Fail(w, r, res.Err(), "")
		return
	}

	updated, err := h.Education.UpdateByID(ctx, oid, set)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Education entry not found")
		}
		h.Respond.Fail(w, r, err, "Failed to update education entry")
		return
	}
	h.Respond.OK(w, "Education entry updated successfully", updated)
}

// DeleteEducation handles DELETE /api/v1/resume/education/{id}.
func (h *Handler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid education ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Education.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Education entry not found")
		}
		h.Respond.Fail(w, r, err, "Failed to delete education entry")
		return
	}
	h.Respond.OK(w, "Education entry deleted successfully", nil)
}
