// internal/app/store/crud/crud.go

// Package crud is the one generic document store behind every resource
// collection. Each resource configures a Store with its collection
// name and sort order; the per-verb semantics (timestamp stamping,
// selective $set updates, guarded singleton upsert, error
// classification) are identical across resources and live here once.
package crud

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/folio/internal/app/store/storeerr"
	"github.com/dalemusser/folio/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Entity is any model embedding models.Meta.
type Entity interface {
	DocMeta() *models.Meta
}

// Store is a typed view over one collection.
//
// The second type parameter ties *T to Entity so methods can stamp
// Meta fields; instantiate as e.g.
//
//	crud.New[models.Project](db, "projects", bson.D{{Key: "order", Value: 1}})
type Store[T any, PT interface {
	Entity
	*T
}] struct {
	c    *mongo.Collection
	sort bson.D
}

// New binds a Store to db.Collection(coll) with the given list sort.
func New[T any, PT interface {
	Entity
	*T
}](db *mongo.Database, coll string, sort bson.D) *Store[T, PT] {
	return &Store[T, PT]{c: db.Collection(coll), sort: sort}
}

// Insert stores doc with a fresh id and timestamps and returns it.
func (s *Store[T, PT]) Insert(ctx context.Context, doc *T) (*T, error) {
	meta := PT(doc).DocMeta()
	now := time.Now().UTC()
	meta.ID = primitive.NewObjectID()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return nil, classify(err)
	}
	return doc, nil
}

// List returns every document in the store's configured order.
func (s *Store[T, PT]) List(ctx context.Context) ([]*T, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(s.sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the document with the given id, or ErrNotFound.
func (s *Store[T, PT]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeerr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateByID merges set into the document and returns the updated
// document. Fields absent from set keep their stored values; a nil
// value removes the field entirely ($unset) — the collection
// validators type the optional date fields as date, so a clear must
// drop the key rather than write null. An empty set degrades to a
// plain read, so update-with-nothing is a no-op.
func (s *Store[T, PT]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}
	unset := bson.M{}
	for k, v := range set {
		if v == nil {
			delete(set, k)
			unset[k] = ""
		}
	}
	set["updated_at"] = time.Now().UTC()

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var doc T
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeerr.ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &doc, nil
}

// First returns the first document in the collection, or ErrNotFound
// when it is empty. Used by the singleton resources.
func (s *Store[T, PT]) First(ctx context.Context) (*T, error) {
	var doc T
	err := s.c.FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeerr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpsertSingleton merges set into the collection's single document,
// creating it when absent. The singleton guard field plus its unique
// index (system/indexes) keeps concurrent first-writes from leaving
// two documents: the losing upsert hits the duplicate-key error and
// retries once as a plain update against the winner's document.
func (s *Store[T, PT]) UpsertSingleton(ctx context.Context, set bson.M) (*T, error) {
	now := time.Now().UTC()
	set["updated_at"] = now
	set["singleton"] = true

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}

	var doc T
	err := s.c.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if wafflemongo.IsDup(err) {
		err = s.c.FindOneAndUpdate(ctx, filter, update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
	}
	if err != nil {
		return nil, classify(err)
	}
	return &doc, nil
}

// DeleteByID removes the document with the given id. Deleting an id
// that matches nothing is ErrNotFound, not success.
func (s *Store[T, PT]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}

// Count reports how many documents the collection holds.
func (s *Store[T, PT]) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// classify maps driver errors onto the storeerr taxonomy. Anything
// unrecognized passes through and surfaces as a server error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if wafflemongo.IsDup(err) {
		return storeerr.ErrDuplicate
	}
	if isSchemaValidation(err) {
		return storeerr.ErrInvalidDocument
	}
	return err
}

// Mongo server code for DocumentValidationFailure.
const codeDocValidationFailure = 121

func isSchemaValidation(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == codeDocValidationFailure {
				return true
			}
		}
	}
	var ce mongo.CommandError
	return errors.As(err, &ce) && ce.Code == codeDocValidationFailure
}
