package crud_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/store/crud"
	"github.com/dalemusser/folio/internal/app/store/storeerr"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newProjectStore(t *testing.T) (*crud.Store[models.Project, *models.Project], *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sort := bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}
	return crud.New[models.Project](db, "projects", sort), db
}

func TestStore_Insert(t *testing.T) {
	store, _ := newProjectStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Insert(ctx, &models.Project{
		Title:            "Portfolio Site",
		ShortDescription: "This very site",
		TechStack:        []string{"Go", "MongoDB"},
		Images:           []string{"https://example.com/shot.png"},
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected generated ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped")
	}

	saved, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if saved.Title != "Portfolio Site" {
		t.Errorf("expected title 'Portfolio Site', got %q", saved.Title)
	}
}

func TestStore_List_SortOrder(t *testing.T) {
	store, db := newProjectStore(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateProject(ctx, "Third", 3)
	fx.CreateProject(ctx, "First", 1)
	fx.CreateProject(ctx, "Second", 2)

	docs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(docs))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if docs[i].Title != want {
			t.Errorf("docs[%d].Title = %q, want %q", i, docs[i].Title, want)
		}
	}
}

func TestStore_List_Empty(t *testing.T) {
	store, _ := newProjectStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	docs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if docs == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store, _ := newProjectStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, storeerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_UpdateByID(t *testing.T) {
	store, db := newProjectStore(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fx.CreateProject(ctx, "Before", 1)

	updated, err := store.UpdateByID(ctx, p.ID, bson.M{"title": "After"})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}

	if updated.Title != "After" {
		t.Errorf("expected title 'After', got %q", updated.Title)
	}
	if updated.ShortDescription != p.ShortDescription {
		t.Error("untouched field should keep its stored value")
	}
	if !updated.UpdatedAt.After(p.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestStore_UpdateByID_EmptySetIsRead(t *testing.T) {
	store, db := newProjectStore(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fx.CreateProject(ctx, "Unchanged", 1)

	got, err := store.UpdateByID(ctx, p.ID, bson.M{})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if got.Title != "Unchanged" {
		t.Errorf("expected title 'Unchanged', got %q", got.Title)
	}
	if !got.UpdatedAt.Equal(p.UpdatedAt) {
		t.Error("empty update should not touch UpdatedAt")
	}
}

func TestStore_UpdateByID_NotFound(t *testing.T) {
	store, _ := newProjectStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UpdateByID(ctx, primitive.NewObjectID(), bson.M{"title": "x"})
	if !errors.Is(err, storeerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_UpdateByID_NilRemovesField(t *testing.T) {
	store, db := newProjectStore(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fx.CreateProject(ctx, "Alpha", 0)
	if _, err := store.UpdateByID(ctx, p.ID, bson.M{"live_url": "https://example.com"}); err != nil {
		t.Fatalf("UpdateByID set failed: %v", err)
	}

	updated, err := store.UpdateByID(ctx, p.ID, bson.M{"live_url": nil})
	if err != nil {
		t.Fatalf("UpdateByID clear failed: %v", err)
	}
	if updated.LiveURL != "" {
		t.Errorf("live_url = %q, want cleared", updated.LiveURL)
	}

	// The key must be removed, not written as null.
	var raw bson.M
	if err := db.Collection("projects").FindOne(ctx, bson.M{"_id": p.ID}).Decode(&raw); err != nil {
		t.Fatalf("find raw doc: %v", err)
	}
	if _, present := raw["live_url"]; present {
		t.Error("live_url key still present after clear")
	}
}

func TestStore_DeleteByID(t *testing.T) {
	store, db := newProjectStore(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fx.CreateProject(ctx, "Doomed", 1)

	if err := store.DeleteByID(ctx, p.ID); err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if _, err := store.GetByID(ctx, p.ID); !errors.Is(err, storeerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again reports not found, not success.
	if err := store.DeleteByID(ctx, p.ID); !errors.Is(err, storeerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_First(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := crud.New[models.ContactInfo](db, "contact_info", bson.D{{Key: "created_at", Value: -1}})
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.First(ctx); !errors.Is(err, storeerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty collection, got %v", err)
	}

	fx.CreateContactInfo(ctx, "Dale", "dale@example.com")

	info, err := store.First(ctx)
	if err != nil {
		t.Fatalf("First failed: %v", err)
	}
	if info.Name != "Dale" {
		t.Errorf("expected name 'Dale', got %q", info.Name)
	}
}

func TestStore_UpsertSingleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := crud.New[models.ContactInfo](db, "contact_info", bson.D{{Key: "created_at", Value: -1}})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The unique index backs the singleton guard in production; create
	// it here so the test exercises the same constraint.
	_, err := db.Collection("contact_info").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "singleton", Value: 1}},
		Options: options.Index().SetName("uniq_contact_info_singleton").SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create index failed: %v", err)
	}

	first, err := store.UpsertSingleton(ctx, bson.M{
		"name":  "Dale",
		"email": "dale@example.com",
		"phone": "555-0100",
	})
	if err != nil {
		t.Fatalf("first UpsertSingleton failed: %v", err)
	}
	if first.ID.IsZero() {
		t.Error("expected generated ID on create")
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt on create")
	}

	time.Sleep(5 * time.Millisecond)

	second, err := store.UpsertSingleton(ctx, bson.M{"name": "Dale M."})
	if err != nil {
		t.Fatalf("second UpsertSingleton failed: %v", err)
	}
	if second.ID != first.ID {
		t.Error("upsert should update the existing document, not create another")
	}
	if second.Name != "Dale M." {
		t.Errorf("expected updated name, got %q", second.Name)
	}
	if second.Email != "dale@example.com" {
		t.Error("fields absent from the set should survive the upsert")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("CreatedAt should not change on update")
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 document, got %d", count)
	}
}
