// internal/app/features/projects/list.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/timeouts"
)

// List handles GET /api/v1/projects.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch projects")
		return
	}
	h.Respond.OK(w, "Projects fetched successfully", docs)
}
