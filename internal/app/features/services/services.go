// internal/app/features/services/services.go
package services

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

// List handles GET /api/v1/services.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch services")
		return
	}
	h.Respond.OK(w, "Services fetched successfully", docs)
}

// Get handles GET /api/v1/services/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid service ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Service not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch service")
		return
	}
	h.Respond.OK(w, "Service fetched successfully", doc)
}

// Create handles POST /api/v1/services.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createServiceInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create service")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create service")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Insert(ctx, in.model())
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create service")
		return
	}
	h.Respond.Created(w, "Service created successfully", created)
}

// Update handles PUT /api/v1/services/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid service ID format"), "")
		return
	}

	var in updateServiceInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update service")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update service")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.UpdateByID(ctx, oid, in.set())
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Service not found")
		}
		h.Respond.Fail(w, r, err, "Failed to update service")
		return
	}
	h.Respond.OK(w, "Service updated successfully", updated)
}

// Delete handles DELETE /api/v1/services/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid service ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Service not found")
		}
		h.Respond.Fail(w, r, err, "Failed to delete service")
		return
	}
	h.Respond.OK(w, "Service deleted successfully", nil)
}
