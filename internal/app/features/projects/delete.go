// internal/app/features/projects/delete.go
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

// Delete handles DELETE /api/v1/projects/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid project ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Project not found")
		}
		h.Respond.Fail(w, r, err, "Failed to delete project")
		return
	}
	h.Respond.OK(w, "Project deleted successfully", nil)
}
