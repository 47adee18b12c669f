// internal/app/features/projects/types.go
package projects

import (
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// createProjectInput is the POST /projects payload.
type createProjectInput struct {
	Title            string   `json:"title" validate:"required,max=200" label:"Title"`
	ShortDescription string   `json:"shortDescription" validate:"required,max=500" label:"Short description"`
	LongDescription  string   `json:"longDescription" validate:"omitempty,max=5000" label:"Long description"`
	TechStack        []string `json:"techStack" validate:"required,min=1,dive,required" label:"Tech stack"`
	Images           []string `json:"images" validate:"required,min=1,dive,required" label:"Images"`
	LiveURL          string   `json:"liveUrl" validate:"omitempty,httpurl" label:"Live URL"`
	GithubURL        string   `json:"githubUrl" validate:"omitempty,httpurl" label:"GitHub URL"`
	IsFeatured       bool     `json:"isFeatured"`
	Order            int      `json:"order" validate:"gte=0" label:"Order"`
}

func (in *createProjectInput) model() *models.Project {
	return &models.Project{
		Title:            strings.TrimSpace(in.Title),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongDescription:  strings.TrimSpace(in.LongDescription),
		TechStack:        in.TechStack,
		Images:           in.Images,
		LiveURL:          strings.TrimSpace(in.LiveURL),
		GithubURL:        strings.TrimSpace(in.GithubURL),
		IsFeatured:       in.IsFeatured,
		Order:            in.Order,
	}
}

// updateProjectInput is the PUT /projects/{id} payload. Nil fields are
// left untouched on the stored document.
type updateProjectInput struct {
	Title            *string   `json:"title" validate:"omitnil,min=1,max=200" label:"Title"`
	ShortDescription *string   `json:"shortDescription" validate:"omitnil,min=1,max=500" label:"Short description"`
	LongDescription  *string   `json:"longDescription" validate:"omitnil,max=5000" label:"Long description"`
	TechStack        *[]string `json:"techStack" validate:"omitnil,min=1,dive,required" label:"Tech stack"`
	Images           *[]string `json:"images" validate:"omitnil,min=1,dive,required" label:"Images"`
	LiveURL          *string   `json:"liveUrl" validate:"omitnil,omitempty,httpurl" label:"Live URL"`
	GithubURL        *string   `json:"githubUrl" validate:"omitnil,omitempty,httpurl" label:"GitHub URL"`
	IsFeatured       *bool     `json:"isFeatured"`
	Order            *int      `json:"order" validate:"omitnil,gte=0" label:"Order"`
}

func (in *updateProjectInput) set() bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = strings.TrimSpace(*in.Title)
	}
	if in.ShortDescription != nil {
		set["short_description"] = strings.TrimSpace(*in.ShortDescription)
	}
	if in.LongDescription != nil {
		set["long_description"] = strings.TrimSpace(*in.LongDescription)
	}
	if in.TechStack != nil {
		set["tech_stack"] = *in.TechStack
	}
	if in.Images != nil {
		set["images"] = *in.Images
	}
	if in.LiveURL != nil {
		set["live_url"] = strings.TrimSpace(*in.LiveURL)
	}
	if in.GithubURL != nil {
		set["github_url"] = strings.TrimSpace(*in.GithubURL)
	}
	if in.IsFeatured != nil {
		set["is_featured"] = *in.IsFeatured
	}
	if in.Order != nil {
		set["order"] = *in.Order
	}
	return set
}
