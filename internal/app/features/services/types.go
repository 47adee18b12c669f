// internal/app/features/services/types.go
package services

import (
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// createServiceInput is the POST /services payload.
type createServiceInput struct {
	Title       string `json:"title" validate:"required,max=200" label:"Title"`
	Description string `json:"description" validate:"required,max=2000" label:"Description"`
	Icon        string `json:"icon" validate:"omitempty,max=100" label:"Icon"`
	Order       int    `json:"order" validate:"gte=0" label:"Order"`
}

func (in *createServiceInput) model() *models.Service {
	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = models.DefaultServiceIcon
	}
	return &models.Service{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Icon:        icon,
		Order:       in.Order,
	}
}

// updateServiceInput is the PUT /services/{id} payload.
type updateServiceInput struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200" label:"Title"`
	Description *string `json:"description" validate:"omitnil,min=1,max=2000" label:"Description"`
	Icon        *string `json:"icon" validate:"omitnil,max=100" label:"Icon"`
	Order       *int    `json:"order" validate:"omitnil,gte=0" label:"Order"`
}

func (in *updateServiceInput) set() bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Icon != nil {
		icon := strings.TrimSpace(*in.Icon)
		if icon == "" {
			icon = models.DefaultServiceIcon
		}
		set["icon"] = icon
	}
	if in.Order != nil {
		set["order"] = *in.Order
	}
	return set
}
