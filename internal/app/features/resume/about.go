// internal/app/features/resume/about.go
package resume

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/folio/internal/app/store/storeerr"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
)

// GetAbout handles GET /api/v1/resume/about. An absent profile is not
// an error here: the endpoint answers 200 with an empty object so a
// fresh portfolio renders an empty about page instead of an error.
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Profile.First(ctx)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			h.Respond.OK(w, "Profile fetched successfully", struct{}{})
			return
		}
		h.Respond.Fail(w, r, err, "Failed to fetch profile")
		return
	}
	h.Respond.OK(w, "Profile fetched successfully", doc)
}

// UpsertAbout handles PUT /api/v1/resume/about. Creates the singleton
// on first write, updates it afterwards; both return 200.
func (h *Handler) UpsertAbout(w http.ResponseWriter, r *http.Request) {
	var in upsertAboutInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update profile")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update profile")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc, err := h.Profile.UpsertSingleton(ctx, in.set())
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to update profile")
		return
	}
	h.Respond.OK(w, "Profile updated successfully", doc)
}
