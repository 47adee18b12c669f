// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique singleton indexes on profiles and contact_info are load-bearing:
the upsert path relies on them to keep concurrent first-writes from leaving
two documents in a one-document collection.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureProjects(ctx, db); err != nil {
		problems = append(problems, "projects: "+err.Error())
	}
	if err := ensureServices(ctx, db); err != nil {
		problems = append(problems, "services: "+err.Error())
	}
	if err := ensureContactInfo(ctx, db); err != nil {
		problems = append(problems, "contact_info: "+err.Error())
	}
	if err := ensureContactMessages(ctx, db); err != nil {
		problems = append(problems, "contact_messages: "+err.Error())
	}
	if err := ensureExperiences(ctx, db); err != nil {
		problems = append(problems, "experiences: "+err.Error())
	}
	if err := ensureEducations(ctx, db); err != nil {
		problems = append(problems, "educations: "+err.Error())
	}
	if err := ensureSkills(ctx, db); err != nil {
		problems = append(problems, "skills: "+err.Error())
	}
	if err := ensureCertifications(ctx, db); err != nil {
		problems = append(problems, "certifications: "+err.Error())
	}
	if err := ensureProfiles(ctx, db); err != nil {
		problems = append(problems, "profiles: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))

		// 1) Load existing indexes
		existing := map[string]existingIndex{} // sig -> index
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
			cur.Close(ctx)
		}

		if ex, ok := existing[desiredSig]; ok {
			// Same key pattern exists already.
			if sameBoolPtr(desiredUnique, ex.Unique) {
				// Name alignment: if the name differs, drop & recreate.
				if desiredName != "" && ex.Name != desiredName {
					if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
						errs = append(errs, fmt.Sprintf("%s(%s): rename drop failed: %v", coll.Name(), desiredName, err))
						continue
					}
					if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
						errs = append(errs, fmt.Sprintf("%s(%s): rename create failed: %v", coll.Name(), desiredName, err))
						continue
					}
					zap.L().Info("index renamed",
						zap.String("collection", coll.Name()),
						zap.String("from", ex.Name),
						zap.String("to", desiredName),
						zap.String("took", time.Since(start).String()))
					continue
				}

				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig),
					zap.String("took", time.Since(start).String()))
				continue
			}

			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				continue
			}
			zap.L().Info("index dropped and recreated",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.String("took", time.Since(start).String()))
			continue
		}

		// 2) No existing index with the same keys: create it.
		created, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil {
			if isOptionsConflictErr(err) {
				// A same-key index slipped in under another name; the next
				// startup run reconciles it. Don't fail the boot.
				zap.L().Info("index exists with conflicting options, deferring",
					zap.String("collection", coll.Name()),
					zap.String("name", desiredName),
					zap.String("keys", desiredSig))
				continue
			}
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("created_name", created),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureProjects(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("projects")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// List order: explicit order first, newest first within a tie
		{
			Keys:    bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_projects_order_created"),
		},
		// Featured filter on landing pages
		{
			Keys:    bson.D{{Key: "is_featured", Value: 1}, {Key: "order", Value: 1}},
			Options: options.Index().SetName("idx_projects_featured_order"),
		},
	})
}

func ensureServices(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("services")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_services_order_created"),
		},
	})
}

func ensureContactInfo(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("contact_info")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Singleton guard: at most one document carries singleton=true,
		// and every document the upsert writes does.
		{
			Keys:    bson.D{{Key: "singleton", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_contact_info_singleton"),
		},
	})
}

func ensureContactMessages(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("contact_messages")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Inbox listing, newest first
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_messages_created"),
		},
		// Unread counts and status-filtered views
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_messages_status_created"),
		},
	})
}

func ensureExperiences(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("experiences")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "start_date", Value: -1}},
			Options: options.Index().SetName("idx_experiences_start"),
		},
	})
}

func ensureEducations(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("educations")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "start_date", Value: -1}},
			Options: options.Index().SetName("idx_educations_start"),
		},
	})
}

func ensureSkills(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("skills")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Grouped listing: by category, strongest first
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "proficiency", Value: -1}},
			Options: options.Index().SetName("idx_skills_category_proficiency"),
		},
	})
}

func ensureCertifications(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("certifications")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order", Value: 1}, {Key: "issue_date", Value: -1}},
			Options: options.Index().SetName("idx_certifications_order_issued"),
		},
	})
}

func ensureProfiles(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("profiles")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Singleton guard, same shape as contact_info.
		{
			Keys:    bson.D{{Key: "singleton", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_profiles_singleton"),
		},
	})
}
