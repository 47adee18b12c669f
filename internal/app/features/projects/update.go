// internal/app/features/projects/update.go
package projects

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

// Update handles PUT /api/v1/projects/{id}. Only fields present in the
// payload are changed.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid project ID format"), "")
		return
	}

	var in updateProjectInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update project")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update project")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.UpdateByID(ctx, oid, in.set())
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Project not found")
		}
		h.Respond.Fail(w, r, err, "Failed to update project")
		return
	}
	h.Respond.OK(w, "Project updated successfully", updated)
}
