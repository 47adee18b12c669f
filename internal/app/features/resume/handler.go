// internal/app/features/resume/handler.go

// Package resume serves the resume sections — work experience,
// education, skills, certifications — and the about/profile card,
// under /api/v1/resume.
package resume

import (
	"github.com/dalemusser/folio/internal/app/store/crud"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the per-section stores for the resume endpoints.
type Handler struct {
	Experience     *crud.Store[models.Experience, *models.Experience]
	Education      *crud.Store[models.Education, *models.Education]
	Skills         *crud.Store[models.Skill, *models.Skill]
	Certifications *crud.Store[models.Certification, *models.Certification]
	Profile        *crud.Store[models.Profile, *models.Profile]

	Respond *respond.Responder
	Log     *zap.Logger
}

// NewHandler constructs a resume Handler. Each section keeps the sort
// order its listing promises: history newest first, skills grouped by
// category with the strongest first, certifications by explicit order
// then most recently issued.
func NewHandler(db *mongo.Database, rsp *respond.Responder, logger *zap.Logger) *Handler {
	return &Handler{
		Experience: crud.New[models.Experience](db, "experiences",
			bson.D{{Key: "start_date", Value: -1}}),
		Education: crud.New[models.Education](db, "educations",
			bson.D{{Key: "start_date", Value: -1}}),
		Skills: crud.New[models.Skill](db, "skills",
			bson.D{{Key: "category", Value: 1}, {Key: "proficiency", Value: -1}}),
		Certifications: crud.New[models.Certification](db, "certifications",
			bson.D{{Key: "order", Value: 1}, {Key: "issue_date", Value: -1}}),
		Profile: crud.New[models.Profile](db, "profiles",
			bson.D{{Key: "created_at", Value: -1}}),
		Respond: rsp,
		Log:     logger,
	}
}
