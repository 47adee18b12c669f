package services_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/folio/internal/app/features/services"
	"github.com/dalemusser/folio/internal/app/system/respond"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*services.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return services.NewHandler(db, respond.New(logger, false), logger), db
}

func TestList(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateService(ctx, "Consulting", 2)
	fx.CreateService(ctx, "Development", 1)

	req := testutil.NewJSONRequest(t, "GET", "/api/v1/services", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var got []models.Service
	env := testutil.DecodeData(t, rec, &got)
	if env.Message != "Services fetched successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 services, got %d", len(got))
	}
	if got[0].Title != "Development" {
		t.Errorf("first service = %q, want Development", got[0].Title)
	}
}

func TestGet_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := testutil.NewJSONRequest(t, "GET", "/api/v1/services/"+id, nil)
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	testutil.AssertFailure(t, rec, http.StatusNotFound, "Service not found")
}

func TestGet_InvalidID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "GET", "/api/v1/services/bogus", nil)
	req = testutil.WithChiURLParam(req, "id", "bogus")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	testutil.AssertFailure(t, rec, http.StatusBadRequest, "Invalid service ID format")
}

func TestCreate(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := map[string]any{
		"title":       "Web Development",
		"description": "Full-stack web apps",
		"order":       1,
	}
	req := testutil.NewJSONRequest(t, "POST", "/api/v1/services", body)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var got models.Service
	env := testutil.DecodeData(t, rec, &got)
	if env.Message != "Service created successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if got.Title != "Web Development" {
		t.Errorf("title = %q", got.Title)
	}
	// Blank icon falls back to the default.
	if got.Icon != models.DefaultServiceIcon {
		t.Errorf("icon = %q, want %q", got.Icon, models.DefaultServiceIcon)
	}
}

func TestCreate_MissingDescription(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := map[string]any{"title": "Nameless"}
	req := testutil.NewJSONRequest(t, "POST", "/api/v1/services", body)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	testutil.AssertFailure(t, rec, http.StatusBadRequest, "Description is required.")
}

func TestUpdate(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := fx.CreateService(ctx, "Before", 1)

	body := map[string]any{"title": "After", "order": 5}
	req := testutil.NewJSONRequest(t, "PUT", "/api/v1/services/"+s.ID.Hex(), body)
	req = testutil.WithChiURLParam(req, "id", s.ID.Hex())
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var got models.Service
	testutil.DecodeData(t, rec, &got)
	if got.Title != "After" {
		t.Errorf("title = %q, want After", got.Title)
	}
	if got.Order != 5 {
		t.Errorf("order = %d, want 5", got.Order)
	}
	if got.Description != s.Description {
		t.Error("untouched field changed")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := testutil.NewJSONRequest(t, "PUT", "/api/v1/services/"+id, map[string]any{"title": "x"})
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	testutil.AssertFailure(t, rec, http.StatusNotFound, "Service not found")
}

func TestDelete(t *testing.T) {
	handler, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := fx.CreateService(ctx, "Doomed", 1)

	req := testutil.NewJSONRequest(t, "DELETE", "/api/v1/services/"+s.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", s.ID.Hex())
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	env := testutil.DecodeEnvelope(t, rec)
	if env.Message != "Service deleted successfully" {
		t.Errorf("message = %q", env.Message)
	}
}
