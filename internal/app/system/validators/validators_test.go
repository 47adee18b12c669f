package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/system/validators"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First call
	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expectedCollections := []string{
		"projects",
		"services",
		"contact_info",
		"contact_messages",
		"experiences",
		"educations",
		"skills",
		"certifications",
		"profiles",
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}

	collMap := make(map[string]bool)
	for _, name := range names {
		collMap[name] = true
	}

	for _, expected := range expectedCollections {
		if !collMap[expected] {
			t.Errorf("expected collection %q to exist", expected)
		}
	}
}

func TestProjectsValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Try to insert a project without required fields - should fail
	_, err = db.Collection("projects").InsertOne(ctx, bson.M{
		"title": "Only a title",
	})
	if err == nil {
		t.Error("expected validation error when inserting project without required fields")
	}
}

func TestProjectsValidator_EmptyTechStack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Tech stack and images require at least one entry
	_, err = db.Collection("projects").InsertOne(ctx, bson.M{
		"title":             "Portfolio",
		"short_description": "Site",
		"tech_stack":        bson.A{},
		"images":            bson.A{"https://example.com/shot.png"},
	})
	if err == nil {
		t.Error("expected validation error for empty tech_stack")
	}
}

func TestProjectsValidator_ValidProject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("projects").InsertOne(ctx, bson.M{
		"title":             "Portfolio",
		"short_description": "Site",
		"tech_stack":        bson.A{"Go"},
		"images":            bson.A{"https://example.com/shot.png"},
	})
	if err != nil {
		t.Errorf("Insert valid project failed: %v", err)
	}
}

func TestServicesValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("services").InsertOne(ctx, bson.M{
		"icon": "wrench",
	})
	if err == nil {
		t.Error("expected validation error when inserting service without required fields")
	}
}

func TestContactInfoValidator_SingletonFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// singleton must be exactly true
	_, err = db.Collection("contact_info").InsertOne(ctx, bson.M{
		"name":      "Dale",
		"email":     "dale@example.com",
		"phone":     "555-0100",
		"singleton": false,
	})
	if err == nil {
		t.Error("expected validation error for singleton=false")
	}

	_, err = db.Collection("contact_info").InsertOne(ctx, bson.M{
		"name":      "Dale",
		"email":     "dale@example.com",
		"phone":     "555-0100",
		"singleton": true,
	})
	if err != nil {
		t.Errorf("Insert valid contact info failed: %v", err)
	}
}

func TestMessagesValidator_Status(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Invalid status - should fail
	_, err = db.Collection("contact_messages").InsertOne(ctx, bson.M{
		"name":    "Sender",
		"email":   "sender@example.com",
		"message": "Hi there",
		"status":  "archived",
	})
	if err == nil {
		t.Error("expected validation error for unknown message status")
	}

	// Every lifecycle status - should succeed
	for _, status := range []string{"unread", "read", "responded"} {
		_, err = db.Collection("contact_messages").InsertOne(ctx, bson.M{
			"name":    "Sender",
			"email":   "sender@example.com",
			"message": "Hi there",
			"status":  status,
		})
		if err != nil {
			t.Errorf("Insert message with status %q failed: %v", status, err)
		}
	}
}

func TestExperiencesValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("experiences").InsertOne(ctx, bson.M{
		"company": "Acme",
	})
	if err == nil {
		t.Error("expected validation error when inserting experience without required fields")
	}

	_, err = db.Collection("experiences").InsertOne(ctx, bson.M{
		"company":     "Acme",
		"position":    "Engineer",
		"start_date":  time.Now(),
		"description": "Built things",
	})
	if err != nil {
		t.Errorf("Insert valid experience failed: %v", err)
	}
}

func TestSkillsValidator_ProficiencyRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Out of range - should fail
	_, err = db.Collection("skills").InsertOne(ctx, bson.M{
		"name":        "Go",
		"category":    "Backend",
		"proficiency": 150,
	})
	if err == nil {
		t.Error("expected validation error for proficiency above 100")
	}

	// In range - should succeed
	_, err = db.Collection("skills").InsertOne(ctx, bson.M{
		"name":        "Go",
		"category":    "Backend",
		"proficiency": 90,
	})
	if err != nil {
		t.Errorf("Insert valid skill failed: %v", err)
	}

	// Unrated - should succeed
	_, err = db.Collection("skills").InsertOne(ctx, bson.M{
		"name":     "Docker",
		"category": "Infra",
	})
	if err != nil {
		t.Errorf("Insert unrated skill failed: %v", err)
	}
}

func TestCertificationsValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("certifications").InsertOne(ctx, bson.M{
		"name": "Cert",
	})
	if err == nil {
		t.Error("expected validation error when inserting certification without required fields")
	}

	_, err = db.Collection("certifications").InsertOne(ctx, bson.M{
		"name":       "Cert",
		"issuer":     "Issuer",
		"issue_date": time.Now(),
	})
	if err != nil {
		t.Errorf("Insert valid certification failed: %v", err)
	}
}

func TestProfilesValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("profiles").InsertOne(ctx, bson.M{
		"name": "Dale",
	})
	if err == nil {
		t.Error("expected validation error when inserting profile without required fields")
	}

	_, err = db.Collection("profiles").InsertOne(ctx, bson.M{
		"name":      "Dale",
		"title":     "Engineer",
		"email":     "dale@example.com",
		"bio":       "A short bio",
		"singleton": true,
	})
	if err != nil {
		t.Errorf("Insert valid profile failed: %v", err)
	}
}
