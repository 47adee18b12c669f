// internal/app/features/projects/get.go
package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/folio/internal/app/store/storeerr"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// Get handles GET /api/v1/projects/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid project ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Project not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch project")
		return
	}
	h.Respond.OK(w, "Project fetched successfully", doc)
}
