// internal/app/features/resume/experience.go
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

// ListExperience handles GET /api/v1/resume/experience.
func (h *Handler) ListExperience(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Experience.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch experience entries")
		return
	}
	h.Respond.OK(w, "Experience entries fetched successfully", docs)
}

// GetExperience handles GET /api/v1/resume/experience/{id}.
func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid experience ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Experience.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Experience entry not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch experience entry")
		return
	}
	h.Respond.OK(w, "Experience entry fetched successfully", doc)
}

// CreateExperience handles POST /api/v1/resume/experience.
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var in createExperienceInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create experience entry")
		return
	}
	doc, err := in.model()
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create experience entry")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Experience.Insert(ctx, doc)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create experience entry")
		return
	}
	h.Respond.Created(w, "Experience entry created successfully", created)
}

// UpdateExperience handles PUT /api/v1/resume/experience/{id}. When
// only one of the date pair is in the payload, the ordering rule is
// checked against the stored counterpart.
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid experience ID format"), "")
		return
	}

	var in updateExperienceInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update experience entry")
		return
	}
	set, start, end, err := in.build()
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to update experience entry")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if (start != nil) != (end != nil) {
		stored, gerr := h.Experience.GetByID(ctx, oid)
		if gerr != nil {
			if errors.Is(gerr, storeerr.ErrNotFound) {
				gerr = storeerr.NotFound("Experience entry not found")
			}
			h.Respond.Fail(w, r, gerr, "Failed to update experience entry")
			return
		}
		if start == nil && !stored.StartDate.IsZero() {
			s := stored.StartDate
			start = &s
		}
		// A payload that clears the end date has nothing to check.
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

	updated, err := h.Experience.UpdateByID(ctx, oid, set)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Experience entry not found")
		}
		h.Respond.Fail(w, r, err, "Failed to update experience entry")
		return
	}
	h.Respond.OK(w, "Experience entry updated successfully", updated)
}

// DeleteExperience handles DELETE /api/v1/resume/experience/{id}.
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid experience ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Experience.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Experience entry not found")
		}
		h.Respond.Fail(w, r, err, "Failed to delete experience entry")
		return
	}
	h.Respond.OK(w, "Experience entry deleted successfully", nil)
}

// endCleared reports whether the update explicitly clears the end date.
func endCleared(set map[string]any) bool {
	v, present := set["end_date"]
	return present && v == nil
}
