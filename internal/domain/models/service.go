// internal/domain/models/service.go
package models

// DefaultServiceIcon is used when a service is created without an icon.
const DefaultServiceIcon = "default"

// Service is an offered service shown on the portfolio.
type Service struct {
	Meta `bson:",inline"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int    `bson:"order" json:"order"`
}
