package indexes_test

import (
	"context"
	"testing"

	"github.com/dalemusser/folio/internal/app/system/indexes"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func collectIndexNames(t *testing.T, ctx context.Context, db *mongo.Database, coll string) map[string]bool {
	t.Helper()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First call
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesListingIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"projects":         {"idx_projects_order_created", "idx_projects_featured_order"},
		"services":         {"idx_services_order_created"},
		"contact_messages": {"idx_messages_created", "idx_messages_status_created"},
		"experiences":      {"idx_experiences_start"},
		"educations":       {"idx_educations_start"},
		"skills":           {"idx_skills_category_proficiency"},
		"certifications":   {"idx_certifications_order_issued"},
	}

	for coll, wantNames := range expected {
		names := collectIndexNames(t, ctx, db, coll)
		for _, name := range wantNames {
			if !names[name] {
				t.Errorf("expected index %q to exist on %s collection", name, coll)
			}
		}
	}
}

func TestEnsureAll_CreatesSingletonGuards(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if names := collectIndexNames(t, ctx, db, "contact_info"); !names["uniq_contact_info_singleton"] {
		t.Error("expected index uniq_contact_info_singleton to exist on contact_info collection")
	}
	if names := collectIndexNames(t, ctx, db, "profiles"); !names["uniq_profiles_singleton"] {
		t.Error("expected index uniq_profiles_singleton to exist on profiles collection")
	}
}

func TestEnsureAll_SingletonGuardEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Run EnsureAll to create indexes
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Insert the singleton contact info document
	_, err = db.Collection("contact_info").InsertOne(ctx, bson.M{
		"name": "Dale", "email": "dale@example.com", "phone": "555-0100", "singleton": true,
	})
	if err != nil {
		t.Fatalf("Insert contact info failed: %v", err)
	}

	// A second singleton document must hit the unique index
	_, err = db.Collection("contact_info").InsertOne(ctx, bson.M{
		"name": "Other", "email": "other@example.com", "phone": "555-0101", "singleton": true,
	})
	if err == nil {
		t.Error("expected duplicate key error for unique index on contact_info.singleton")
	}
}
