// internal/app/features/contact/info.go
package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/folio/internal/app/store/storeerr"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
)

// GetInfo handles GET /api/v1/contact. The collection holds at most
// one document; absence is a 404.
func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Info.First(ctx)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Contact information not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch contact information")
		return
	}
	h.Respond.OK(w, "Contact information fetched successfully", doc)
}

// ListInfo handles GET /api/v1/contact/all.
func (h *Handler) ListInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Info.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch contact information")
		return
	}
	h.Respond.OK(w, "Contact information fetched successfully", docs)
}

// UpsertInfo handles PUT /api/v1/contact. Creates the singleton on
// first write, updates it afterwards; both return 200.
func (h *Handler) UpsertInfo(w http.ResponseWriter, r *http.Request) {
	var in upsertInfoInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update contact information")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update contact information")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc, err := h.Info.UpsertSingleton(ctx, in.set())
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to update contact information")
		return
	}
	h.Respond.OK(w, "Contact information updated successfully", doc)
}
