// internal/app/features/projects/handler.go

// Package projects serves the portfolio project CRUD endpoints under
// /api/v1/projects.
package projects

import (
	"github.com/dalemusser/folio/internal/app/store/crud"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the project endpoints.
type Handler struct {
	Store   *crud.Store[models.Project, *models.Project]
	Respond *respond.Responder
	Log     *zap.Logger
}

// NewHandler constructs a projects Handler bound to the projects
// collection, listing by explicit order then newest first.
func NewHandler(db *mongo.Database, rsp *respond.Responder, logger *zap.Logger) *Handler {
	return &Handler{
		Store: crud.New[models.Project](db, "projects",
			bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}),
		Respond: rsp,
		Log:     logger,
	}
}
