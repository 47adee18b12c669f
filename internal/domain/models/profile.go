// internal/domain/models/profile.go
package models

// Profile is the about/profile card served under /resume/about.
// Like ContactInfo it is a singleton collection.
type Profile struct {
	Meta `bson:",inline"`

	Name  string `bson:"name" json:"name"`
	Title string `bson:"title" json:"title"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
	Bio   string `bson:"bio" json:"bio"`

	ProfileImage string       `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Address      *Address     `bson:"address,omitempty" json:"address,omitempty"`
	SocialLinks  *SocialLinks `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
	Resume       string       `bson:"resume,omitempty" json:"resume,omitempty"`

	Singleton bool `bson:"singleton" json:"-"`
}
