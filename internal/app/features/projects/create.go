// internal/app/features/projects/create.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
)

// Create handles POST /api/v1/projects.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createProjectInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create project")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to create project")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Insert(ctx, in.model())
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to create project")
		return
	}
	h.Respond.Created(w, "Project created successfully", created)
}
