// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	// helper: ensure collection exists and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("projects", projectsSchema())
	ensure("services", servicesSchema())
	ensure("contact_info", contactInfoSchema())
	ensure("contact_messages", contactMessagesSchema())
	ensure("experiences", experiencesSchema())
	ensure("educations", educationsSchema())
	ensure("skills", skillsSchema())
	ensure("certifications", certificationsSchema())
	ensure("profiles", profilesSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

// nonBlank is the shared shape for required string fields.
func nonBlank() bson.M {
	return bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}
}

func projectsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "short_description", "tech_stack", "images"},
			"properties": bson.M{
				"title":             nonBlank(),
				"short_description": nonBlank(),
				"long_description":  bson.M{"bsonType": "string"},
				"tech_stack": bson.M{
					"bsonType": "array",
					"minItems": 1,
					"items":    bson.M{"bsonType": "string"},
				},
				"images": bson.M{
					"bsonType": "array",
					"minItems": 1,
					"items":    bson.M{"bsonType": "string"},
				},
				"live_url":    bson.M{"bsonType": "string"},
				"github_url":  bson.M{"bsonType": "string"},
				"is_featured": bson.M{"bsonType": "bool"},
				"order":       bson.M{"bsonType": bson.A{"int", "long"}},
			},
		},
	}
}

func servicesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "description"},
			"properties": bson.M{
				"title":       nonBlank(),
				"description": nonBlank(),
				"icon":        bson.M{"bsonType": "string"},
				"order":       bson.M{"bsonType": bson.A{"int", "long"}},
			},
		},
	}
}

func contactInfoSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email", "phone", "singleton"},
			"properties": bson.M{
				"name":      nonBlank(),
				"email":     nonBlank(),
				"phone":     nonBlank(),
				"bio":       bson.M{"bsonType": "string"},
				"resume":    bson.M{"bsonType": "string"},
				"singleton": bson.M{"enum": bson.A{true}},
			},
		},
	}
}

func contactMessagesSchema() bson.M {
	statusEnum := bson.A{}
	for _, s := range models.MessageStatuses {
		statusEnum = append(statusEnum, s)
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email", "message", "status"},
			"properties": bson.M{
				"name":    nonBlank(),
				"email":   nonBlank(),
				"subject": bson.M{"bsonType": "string"},
				"message": nonBlank(),
				"status":  bson.M{"enum": statusEnum},
			},
		},
	}
}

func experiencesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"company", "position", "start_date", "description"},
			"properties": bson.M{
				"company":     nonBlank(),
				"position":    nonBlank(),
				"location":    bson.M{"bsonType": "string"},
				"start_date":  bson.M{"bsonType": "date"},
				"end_date":    bson.M{"bsonType": "date"},
				"is_current":  bson.M{"bsonType": "bool"},
				"description": nonBlank(),
				"order":       bson.M{"bsonType": bson.A{"int", "long"}},
			},
		},
	}
}

func educationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"institution", "degree", "field_of_study", "start_date"},
			"properties": bson.M{
				"institution":    nonBlank(),
				"degree":         nonBlank(),
				"field_of_study": nonBlank(),
				"location":       bson.M{"bsonType": "string"},
				"start_date":     bson.M{"bsonType": "date"},
				"end_date":       bson.M{"bsonType": "date"},
				"is_current":     bson.M{"bsonType": "bool"},
				"grade":          bson.M{"bsonType": "string"},
				"description":    bson.M{"bsonType": "string"},
				"order":          bson.M{"bsonType": bson.A{"int", "long"}},
			},
		},
	}
}

func skillsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "category"},
			"properties": bson.M{
				"name":     nonBlank(),
				"category": nonBlank(),
				"proficiency": bson.M{
					"bsonType": bson.A{"int", "long"},
					"minimum":  0,
					"maximum":  100,
				},
				"icon":  bson.M{"bsonType": "string"},
				"order": bson.M{"bsonType": bson.A{"int", "long"}},
			},
		},
	}
}

func certificationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "issuer", "issue_date"},
			"properties": bson.M{
				"name":           nonBlank(),
				"issuer":         nonBlank(),
				"issue_date":     bson.M{"bsonType": "date"},
				"expiry_date":    bson.M{"bsonType": "date"},
				"credential_id":  bson.M{"bsonType": "string"},
				"credential_url": bson.M{"bsonType": "string"},
				"description":    bson.M{"bsonType": "string"},
				"order":          bson.M{"bsonType": bson.A{"int", "long"}},
			},
		},
	}
}

func profilesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "title", "email", "bio", "singleton"},
			"properties": bson.M{
				"name":          nonBlank(),
				"title":         nonBlank(),
				"email":         nonBlank(),
				"phone":         bson.M{"bsonType": "string"},
				"bio":           nonBlank(),
				"profile_image": bson.M{"bsonType": "string"},
				"resume":        bson.M{"bsonType": "string"},
				"singleton":     bson.M{"enum": bson.A{true}},
			},
		},
	}
}
