package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s document: %v", coll, err)
	}
}

func stampedMeta() models.Meta {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.Meta{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateProject creates a test project with the given title and order.
func (f *Fixtures) CreateProject(ctx context.Context, title string, order int) models.Project {
	f.t.Helper()

	p := models.Project{
		Meta:             stampedMeta(),
		Title:            title,
		ShortDescription: "A test project",
		TechStack:        []string{"Go", "MongoDB"},
		Images:           []string{"https://example.com/shot.png"},
		Order:            order,
	}
	f.insert(ctx, "projects", p)
	return p
}

// CreateFeaturedProject creates a test project marked as featured.
func (f *Fixtures) CreateFeaturedProject(ctx context.Context, title string, order int) models.Project {
	f.t.Helper()

	p := models.Project{
		Meta:             stampedMeta(),
		Title:            title,
		ShortDescription: "A featured test project",
		TechStack:        []string{"Go"},
		Images:           []string{"https://example.com/shot.png"},
		IsFeatured:       true,
		Order:            order,
	}
	f.insert(ctx, "projects", p)
	return p
}

// CreateService creates a test service with the given title and order.
func (f *Fixtures) CreateService(ctx context.Context, title string, order int) models.Service {
	f.t.Helper()

	s := models.Service{
		Meta:        stampedMeta(),
		Title:       title,
		Description: "A test service",
		Icon:        models.DefaultServiceIcon,
		Order:       order,
	}
	f.insert(ctx, "services", s)
	return s
}

// CreateContactInfo creates the singleton contact info document.
func (f *Fixtures) CreateContactInfo(ctx context.Context, name, email string) models.ContactInfo {
	f.t.Helper()

	info := models.ContactInfo{
		Meta:      stampedMeta(),
		Name:      name,
		Email:     email,
		Phone:     "+1 555 0100",
		Singleton: true,
	}
	f.insert(ctx, "contact_info", info)
	return info
}

// CreateMessage creates a test contact message with the given status.
func (f *Fixtures) CreateMessage(ctx context.Context, name, status string) models.ContactMessage {
	f.t.Helper()

	m := models.ContactMessage{
		Meta:    stampedMeta(),
		Name:    name,
		Email:   "sender@example.com",
		Subject: "Hello",
		Message: "This is a test message body.",
		Status:  status,
	}
	f.insert(ctx, "contact_messages", m)
	return m
}

// CreateExperience creates a test work-history entry starting at start.
// A zero end marks a current position.
func (f *Fixtures) CreateExperience(ctx context.Context, company string, start, end time.Time) models.Experience {
	f.t.Helper()

	e := models.Experience{
		Meta:        stampedMeta(),
		Company:     company,
		Position:    "Engineer",
		StartDate:   start,
		EndDate:     end,
		IsCurrent:   end.IsZero(),
		Description: "Built and ran things.",
	}
	f.insert(ctx, "experiences", e)
	return e
}

// CreateEducation creates a test education entry starting at start.
func (f *Fixtures) CreateEducation(ctx context.Context, institution string, start, end time.Time) models.Education {
	f.t.Helper()

	e := models.Education{
		Meta:         stampedMeta(),
		Institution:  institution,
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		StartDate:    start,
		EndDate:      end,
		IsCurrent:    end.IsZero(),
	}
	f.insert(ctx, "educations", e)
	return e
}

// CreateSkill creates a test skill in the given category.
func (f *Fixtures) CreateSkill(ctx context.Context, name, category string, proficiency int) models.Skill {
	f.t.Helper()

	s := models.Skill{
		Meta:        stampedMeta(),
		Name:        name,
		Category:    category,
		Proficiency: &proficiency,
	}
	f.insert(ctx, "skills", s)
	return s
}

// CreateCertification creates a test certification issued at issued.
func (f *Fixtures) CreateCertification(ctx context.Context, name string, issued time.Time) models.Certification {
	f.t.Helper()

	c := models.Certification{
		Meta:      stampedMeta(),
		Name:      name,
		Issuer:    "Test Issuer",
		IssueDate: issued,
	}
	f.insert(ctx, "certifications", c)
	return c
}

// CreateProfile creates the singleton about/profile document.
func (f *Fixtures) CreateProfile(ctx context.Context, name, title string) models.Profile {
	f.t.Helper()

	p := models.Profile{
		Meta:      stampedMeta(),
		Name:      name,
		Title:     title,
		Email:     "owner@example.com",
		Phone:     "+1 555 0101",
		Bio:       "A short test bio.",
		Singleton: true,
	}
	f.insert(ctx, "profiles", p)
	return p
}
