// internal/app/features/resume/certifications.go
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

// ListCertifications handles GET /api/v1/resume/certifications.
func (h *Handler) ListCertifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Certifications.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch certifications")
		return
	}
	h.Respond.OK(w, "Certifications fetched successfully", docs)
}

// GetCertification handles GET /api/v1/resume/certifications/{id}.
func (h *Handler) GetCertification(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid certification ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Certifications.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Certification not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch certification")
		return
	}
	h.Respond.OK(w, "Certification fetched successfully", doc)
}

// CreateCertification handles POST /api/v1/resume/certifications.
func (h *Handler) CreateCertification(w http.ResponseWriter, r *http.Request) {
	var in createCertificationInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create certification")
		return
	}
	doc, err := in.model()
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create certification")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Certifications.Insert(ctx, doc)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create certification")
		return
	}
	h.Respond.Created(w, "Certification created successfully", created)
}

// UpdateCertification handles PUT /api/v1/resume/certifications/{id}.
// When only one of issue/expiry is in the payload, the ordering rule
// is checked against the stored counterpart.
func (h *Handler) UpdateCertification(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid certification ID format"), "")
		return
	}

	var in updateCertificationInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update certification")
		return
	}
	set, issued, expires, err := in.build()
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to update certification")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if (issued != nil) != (expires != nil) {
		stored, gerr := h.Certifications.GetByID(ctx, oid)
		if gerr != nil {
			if errors.Is(gerr, storeerr.ErrNotFound) {
				gerr = storeerr.NotFound("Certification not found")
			}
			h.Respond.Fail(w, r, gerr, "Failed to update certification")
			return
		}
		if issued == nil && !stored.IssueDate.IsZero() {
			t := stored.IssueDate
			issued = &t
		}
		if expires == nil && !expiryCleared(set) && !stored.ExpiryDate.IsZero() {
			t := stored.ExpiryDate
			expires = &t
		}
	}
	if issued != nil && expires != nil && !expires.After(*issued) {
		res := &inputval.Result{Errors: []inputval.FieldError{{
			Field: "Expiry date", Message: "Expiry date must be after issue date.",
		}}}
		h.Respond.Fail(w, r, res.Err(), "")
		return
	}

	updated, err := h.Certifications.UpdateByID(ctx, oid, set)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Certification not found")
		}
		h.Respond.Fail(w, r, err, "Failed to update certification")
		return
	}
	h.Respond.OK(w, "Certification updated successfully", updated)
}

// DeleteCertification handles DELETE /api/v1/resume/certifications/{id}.
func (h *Handler) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid certification ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Certifications.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Certification not found")
		}
		h.Respond.Fail(w, r, err, "Failed to delete certification")
		return
	}
	h.Respond.OK(w, "Certification deleted successfully", nil)
}

// expiryCleared reports whether the update explicitly clears the
// expiry date.
func expiryCleared(set map[string]any) bool {
	v, present := set["expiry_date"]
	return present && v == nil
}
