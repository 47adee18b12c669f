// internal/domain/models/contact.go
package models

// Address is the optional postal address block shared by ContactInfo
// and Profile.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	ZipCode string `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
}

// SocialLinks holds the optional social profile URLs.
type SocialLinks struct {
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Github    string `bson:"github,omitempty" json:"github,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Portfolio string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// ContactInfo is the public "how to reach me" card. The collection is
// a singleton: reads take the first document, writes upsert against
// the singleton guard (see store/crud and system/indexes).
type ContactInfo struct {
	Meta `bson:",inline"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`

	Address *Address     `bson:"address,omitempty" json:"address,omitempty"`
	Bio     string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Social  *SocialLinks `bson:"social,omitempty" json:"social,omitempty"`
	Resume  string       `bson:"resume,omitempty" json:"resume,omitempty"`

	// Singleton is always true; a unique index on it keeps the
	// collection at one document even under concurrent upserts.
	Singleton bool `bson:"singleton" json:"-"`
}
