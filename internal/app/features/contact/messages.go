// internal/app/features/contact/messages.go
package contact

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

// CreateMessage handles POST /api/v1/contact/messages — the public
// contact form. Free text is sanitized first, then validated, so the
// stored values are what the length rules were checked against. New
// messages always start unread.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var in createMessageInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to send message")
		return
	}
	in.clean()
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to send message")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Messages.Insert(ctx, in.model())
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to send message")
		return
	}
	h.Respond.Created(w, "Message sent successfully", created)
}

// ListMessages handles GET /api/v1/contact/messages.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Messages.List(ctx)
	if err != nil {
		h.Respond.Fail(w, r, err, "Failed to fetch messages")
		return
	}
	h.Respond.OK(w, "Messages fetched successfully", docs)
}

// GetMessage handles GET /api/v1/contact/messages/{id}.
func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid message ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Messages.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Message not found")
		}
		h.Respond.Fail(w, r, err, "Failed to fetch message")
		return
	}
	h.Respond.OK(w, "Message fetched successfully", doc)
}

// UpdateMessage handles PUT /api/v1/contact/messages/{id}. Only the
// status can change; the submitted content is immutable.
func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid message ID format"), "")
		return
	}

	var in updateMessageInput
	if err := respond.DecodeJSON(w, r, &in); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update message")
		return
	}
	if err := inputval.Validate(&in).Err(); err != nil {
		h.Respond.Fail(w, r, err, "Failed to update message")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Messages.UpdateByID(ctx, oid, in.set())
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Message not found")
		}
		h.Respond.Fail(w, r, err, "Failed to update message")
		return
	}
	h.Respond.OK(w, "Message updated successfully", updated)
}

// DeleteMessage handles DELETE /api/v1/contact/messages/{id}.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	oid, ok := inputval.ObjectID(chi.URLParam(r, "id"))
	if !ok {
		h.Respond.Fail(w, r, storeerr.InvalidID("Invalid message ID format"), "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Messages.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			err = storeerr.NotFound("Message not found")
		}
		h.Respond.Fail(w, r, err, "Failed to delete message")
		return
	}
	h.Respond.OK(w, "Message deleted successfully", nil)
}
