// internal/domain/models/meta.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta carries the fields every stored document shares: the Mongo _id
// and the created/updated timestamps. The store layer owns all three;
// request bodies never set them.
//
// Embed it first in each model so the bson document keeps _id up front.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// DocMeta exposes the embedded Meta so generic store code can stamp
// ids and timestamps without knowing the concrete document type.
func (m *Meta) DocMeta() *Meta { return m }
