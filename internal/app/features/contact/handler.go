// internal/app/features/contact/handler.go

// Package contact serves the contact card (a singleton document) and
// the contact-form message inbox under /api/v1/contact.
package contact

import (
	"github.com/dalemusser/folio/internal/app/store/crud"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the contact endpoints.
type Handler struct {
	Info     *crud.Store[models.ContactInfo, *models.ContactInfo]
	Messages *crud.Store[models.ContactMessage, *models.ContactMessage]

	Respond *respond.Responder
	Log     *zap.Logger
}

// NewHandler constructs a contact Handler over the contact_info and
// contact_messages collections. Messages list newest first.
func NewHandler(db *mongo.Database, rsp *respond.Responder, logger *zap.Logger) *Handler {
	return &Handler{
		Info: crud.New[models.ContactInfo](db, "contact_info",
			bson.D{{Key: "created_at", Value: -1}}),
		Messages: crud.New[models.ContactMessage](db, "contact_messages",
			bson.D{{Key: "created_at", Value: -1}}),
		Respond: rsp,
		Log:     logger,
	}
}
