// internal/app/features/contact/types.go
package contact

import (
	"strings"

	"github.com/dalemusser/folio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// addressInput mirrors models.Address on the wire.
type addressInput struct {
	Street  string `json:"street" validate:"omitempty,max=200" label:"Street"`
	City    string `json:"city" validate:"omitempty,max=100" label:"City"`
	State   string `json:"state" validate:"omitempty,max=100" label:"State"`
	Country string `json:"country" validate:"omitempty,max=100" label:"Country"`
	ZipCode string `json:"zipCode" validate:"omitempty,max=20" label:"Zip code"`
}

func (in *addressInput) model() *models.Address {
	return &models.Address{
		Street:  strings.TrimSpace(in.Street),
		City:    strings.TrimSpace(in.City),
		State:   strings.TrimSpace(in.State),
		Country: strings.TrimSpace(in.Country),
		ZipCode: strings.TrimSpace(in.ZipCode),
	}
}

// socialLinksInput mirrors models.SocialLinks on the wire.
type socialLinksInput struct {
	LinkedIn  string `json:"linkedin" validate:"omitempty,httpurl" label:"LinkedIn URL"`
	Github    string `json:"github" validate:"omitempty,httpurl" label:"GitHub URL"`
	Twitter   string `json:"twitter" validate:"omitempty,httpurl" label:"Twitter URL"`
	Instagram string `json:"instagram" validate:"omitempty,httpurl" label:"Instagram URL"`
	Portfolio string `json:"portfolio" validate:"omitempty,httpurl" label:"Portfolio URL"`
}

func (in *socialLinksInput) model() *models.SocialLinks {
	return &models.SocialLinks{
		LinkedIn:  strings.TrimSpace(in.LinkedIn),
		Github:    strings.TrimSpace(in.Github),
		Twitter:   strings.TrimSpace(in.Twitter),
		Instagram: strings.TrimSpace(in.Instagram),
		Portfolio: strings.TrimSpace(in.Portfolio),
	}
}

// upsertInfoInput is the PUT /contact payload. The singleton upsert
// requires the full card, so the required fields are always present.
type upsertInfoInput struct {
	Name  string `json:"name" validate:"required,max=100" label:"Name"`
	Email string `json:"email" validate:"required,email" label:"Email"`
	Phone string `json:"phone" validate:"required,phone,max=30" label:"Phone"`

	Address *addressInput     `json:"address"`
	Bio     string            `json:"bio" validate:"omitempty,max=1000" label:"Bio"`
	Social  *socialLinksInput `json:"social"`
	Resume  string            `json:"resume" validate:"omitempty,httpurl" label:"Resume URL"`
}

func (in *upsertInfoInput) set() bson.M {
	set := bson.M{
		"name":   strings.TrimSpace(in.Name),
		"email":  strings.TrimSpace(in.Email),
		"phone":  strings.TrimSpace(in.Phone),
		"bio":    strings.TrimSpace(in.Bio),
		"resume": strings.TrimSpace(in.Resume),
	}
	if in.Address != nil {
		set["address"] = in.Address.model()
	}
	if in.Social != nil {
		set["social"] = in.Social.model()
	}
	return set
}

// createMessageInput is the public POST /contact/messages payload.
type createMessageInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100" label:"Name"`
	Email   string `json:"email" validate:"required,email" label:"Email"`
	Subject string `json:"subject" validate:"omitempty,max=200" label:"Subject"`
	Message string `json:"message" validate:"required,min=10,max=2000" label:"Message"`
}

// clean strips markup from the free-text fields. It runs before
// validation so the length bounds apply to what will be stored, not to
// raw markup — a submission that is nothing but tags must not pass.
func (in *createMessageInput) clean() {
	in.Name = htmlsanitize.Clean(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = htmlsanitize.Clean(in.Subject)
	in.Message = htmlsanitize.Clean(in.Message)
}

// model builds the stored document from the cleaned input.
func (in *createMessageInput) model() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.MessageUnread,
	}
}

// updateMessageInput is the PUT /contact/messages/{id} payload, used
// to move a message through the unread/read/responded lifecycle.
type updateMessageInput struct {
	Status *string `json:"status" validate:"omitnil,msgstatus" label:"Status"`
}

func (in *updateMessageInput) set() bson.M {
	set := bson.M{}
	if in.Status != nil {
		set["status"] = strings.ToLower(strings.TrimSpace(*in.Status))
	}
	return set
}
