// internal/app/features/services/handler.go

// Package services serves the offered-services CRUD endpoints under
// /api/v1/services.
package services

import (
	"github.com/dalemusser/folio/internal/app/store/crud"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the service endpoints.
type Handler struct {
	Store   *crud.Store[models.Service, *models.Service]
	Respond *respond.Responder
	Log     *zap.Logger
}

// NewHandler constructs a services Handler bound to the services
// collection.
func NewHandler(db *mongo.Database, rsp *respond.Responder, logger *zap.Logger) *Handler {
	return &Handler{
		Store: crud.New[models.Service](db, "services",
			bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}),
		Respond: rsp,
		Log:     logger,
	}
}
