// internal/domain/models/project.go
package models

// Project is a single portfolio project card.
//
// TechStack and Images are required and must be non-empty; LiveURL and
// GithubURL, when present, must be absolute http(s) URLs. Listing
// orders by ascending Order, then newest first.
type Project struct {
	Meta `bson:",inline"`

	Title            string `bson:"title" json:"title"`
	ShortDescription string `bson:"short_description" json:"shortDescription"`
	LongDescription  string `bson:"long_description,omitempty" json:"longDescription,omitempty"`

	TechStack []string `bson:"tech_stack" json:"techStack"`
	Images    []string `bson:"images" json:"images"`

	LiveURL   string `bson:"live_url,omitempty" json:"liveUrl,omitempty"`
	GithubURL string `bson:"github_url,omitempty" json:"githubUrl,omitempty"`

	IsFeatured bool `bson:"is_featured" json:"isFeatured"`
	Order      int  `bson:"order" json:"order"`
}
