// internal/app/features/resume/types.go
package resume

import (
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Dates arrive as strings (RFC 3339 or YYYY-MM-DD). Tag rules run
// first; date parsing and cross-field ordering are checked by hand and
// appended to the same Result so the client sees one error list.

// requireDate parses a mandatory date field, recording an error on the
// result when it is missing or unparseable.
func requireDate(res *inputval.Result, label, s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		// The required tag already reported this.
		return time.Time{}
	}
	t, ok := inputval.ParseDate(s)
	if !ok {
		res.Errors = append(res.Errors, inputval.FieldError{
			Field:   label,
			Message: label + " must be a valid date.",
		})
	}
	return t
}

// optionalDate parses an optional date field; empty means absent.
func optionalDate(res *inputval.Result, label, s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	return requireDate(res, label, s)
}

// checkDateOrder records an error when both dates are set and the
// second does not come after the first.
func checkDateOrder(res *inputval.Result, firstLabel, secondLabel string, first, second time.Time) {
	if first.IsZero() || second.IsZero() {
		return
	}
	if !second.After(first) {
		res.Errors = append(res.Errors, inputval.FieldError{
			Field:   secondLabel,
			Message: secondLabel + " must be after " + strings.ToLower(firstLabel) + ".",
		})
	}
}

/* ------------------------------ experience ------------------------------ */

type createExperienceInput struct {
	Company  string `json:"company" validate:"required,max=200" label:"Company"`
	Position string `json:"position" validate:"required,max=200" label:"Position"`
	Location string `json:"location" validate:"omitempty,max=200" label:"Location"`

	StartDate string `json:"startDate" validate:"required" label:"Start date"`
	EndDate   string `json:"endDate" label:"End date"`
	IsCurrent bool   `json:"isCurrent"`

	Description      string   `json:"description" validate:"required,max=2000" label:"Description"`
	Responsibilities []string `json:"responsibilities" validate:"omitempty,dive,required" label:"Responsibilities"`
	Technologies     []string `json:"technologies" validate:"omitempty,dive,required" label:"Technologies"`

	Order int `json:"order" validate:"gte=0" label:"Order"`
}

func (in *createExperienceInput) model() (*models.Experience, error) {
	res := inputval.Validate(in)
	start := requireDate(res, "Start date", in.StartDate)
	end := optionalDate(res, "End date", in.EndDate)
	checkDateOrder(res, "Start date", "End date", start, end)
	if err := res.Err(); err != nil {
		return nil, err
	}

	return &models.Experience{
		Company:          strings.TrimSpace(in.Company),
		Position:         strings.TrimSpace(in.Position),
		Location:         strings.TrimSpace(in.Location),
		StartDate:        start,
		EndDate:          end,
		IsCurrent:        in.IsCurrent,
		Description:      strings.TrimSpace(in.Description),
		Responsibilities: in.Responsibilities,
		Technologies:     in.Technologies,
		Order:            in.Order,
	}, nil
}

type updateExperienceInput struct {
	Company  *string `json:"company" validate:"omitnil,min=1,max=200" label:"Company"`
	Position *string `json:"position" validate:"omitnil,min=1,max=200" label:"Position"`
	Location *string `json:"location" validate:"omitnil,max=200" label:"Location"`

	StartDate *string `json:"startDate" label:"Start date"`
	EndDate   *string `json:"endDate" label:"End date"`
	IsCurrent *bool   `json:"isCurrent"`

	Description      *string   `json:"description" validate:"omitnil,min=1,max=2000" label:"Description"`
	Responsibilities *[]string `json:"responsibilities" validate:"omitnil,dive,required" label:"Responsibilities"`
	Technologies     *[]string `json:"technologies" validate:"omitnil,dive,required" label:"Technologies"`

	Order *int `json:"order" validate:"omitnil,gte=0" label:"Order"`
}

// build returns the selective update plus the parsed dates (nil when
// the field was not in the payload). The handler completes the
// start/end ordering check against the stored document.
func (in *updateExperienceInput) build() (set bson.M, start, end *time.Time, err error) {
	res := inputval.Validate(in)
	set = bson.M{}

	if in.Company != nil {
		set["company"] = strings.TrimSpace(*in.Company)
	}
	if in.Position != nil {
		set["position"] = strings.TrimSpace(*in.Position)
	}
	if in.Location != nil {
		set["location"] = strings.TrimSpace(*in.Location)
	}
	if in.StartDate != nil {
		t := requireDate(res, "Start date", *in.StartDate)
		if strings.TrimSpace(*in.StartDate) == "" {
			res.Errors = append(res.Errors, inputval.FieldError{
				Field: "Start date", Message: "Start date must be a valid date.",
			})
		}
		if !t.IsZero() {
			set["start_date"] = t
			start = &t
		}
	}
	if in.EndDate != nil {
		if strings.TrimSpace(*in.EndDate) == "" {
			// Explicit empty clears the end date (back to current).
			set["end_date"] = nil
		} else {
			t := requireDate(res, "End date", *in.EndDate)
			if !t.IsZero() {
				set["end_date"] = t
				end = &t
			}
		}
	}
	if in.IsCurrent != nil {
		set["is_current"] = *in.IsCurrent
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Responsibilities != nil {
		set["responsibilities"] = *in.Responsibilities
	}
	if in.Technologies != nil {
		set["technologies"] = *in.Technologies
	}
	if in.Order != nil {
		set["order"] = *in.Order
	}

	if err := res.Err(); err != nil {
		return nil, nil, nil, err
	}
	return set, start, end, nil
}

/* ------------------------------ education ------------------------------- */

type createEducationInput struct {
	Institution  string `json:"institution" validate:"required,max=200" label:"Institution"`
	Degree       string `json:"degree" validate:"required,max=200" label:"Degree"`
	FieldOfStudy string `json:"fieldOfStudy" validate:"required,max=200" label:"Field of study"`
	Location     string `json:"location" validate:"omitempty,max=200" label:"Location"`

	StartDate string `json:"startDate" validate:"required" label:"Start date"`
	EndDate   string `json:"endDate" label:"End date"`
	IsCurrent bool   `json:"isCurrent"`

	Grade       string `json:"grade" validate:"omitempty,max=50" label:"Grade"`
	Description string `json:"description" validate:"omitempty,max=2000" label:"Description"`

	Order int `json:"order" validate:"gte=0" label:"Order"`
}

func (in *createEducationInput) model() (*models.Education, error) {
	res := inputval.Validate(in)
	start := requireDate(res, "Start date", in.StartDate)
	end := optionalDate(res, "End date", in.EndDate)
	checkDateOrder(res, "Start date", "End date", start, end)
	if err := res.Err(); err != nil {
		return nil, err
	}

	return &models.Education{
		Institution:  strings.TrimSpace(in.Institution),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		Location:     strings.TrimSpace(in.Location),
		StartDate:    start,
		EndDate:      end,
		IsCurrent:    in.IsCurrent,
		Grade:        strings.TrimSpace(in.Grade),
		Description:  strings.TrimSpace(in.Description),
		Order:        in.Order,
	}, nil
}

type updateEducationInput struct {
	Institution  *string `json:"institution" validate:"omitnil,min=1,max=200" label:"Institution"`
	Degree       *string `json:"degree" validate:"omitnil,min=1,max=200" label:"Degree"`
	FieldOfStudy *string `json:"fieldOfStudy" validate:"omitnil,min=1,max=200" label:"Field of study"`
	Location     *string `json:"location" validate:"omitnil,max=200" label:"Location"`

	StartDate *string `json:"startDate" label:"Start date"`
	EndDate   *string `json:"endDate" label:"End date"`
	IsCurrent *bool   `json:"isCurrent"`

	Grade       *string `json:"grade" validate:"omitnil,max=50" label:"Grade"`
	Description *string `json:"description" validate:"omitnil,max=2000" label:"Description"`

	Order *int `json:"order" validate:"omitnil,gte=0" label:"Order"`
}

func (in *updateEducationInput) build() (set bson.M, start, end *time.Time, err error) {
	res := inputval.Validate(in)
	set = bson.M{}

	if in.Institution != nil {
		set["institution"] = strings.TrimSpace(*in.Institution)
	}
	if in.Degree != nil {
		set["degree"] = strings.TrimSpace(*in.Degree)
	}
	if in.FieldOfStudy != nil {
		set["field_of_study"] = strings.TrimSpace(*in.FieldOfStudy)
	}
	if in.Location != nil {
		set["location"] = strings.TrimSpace(*in.Location)
	}
	if in.StartDate != nil {
		if strings.TrimSpace(*in.StartDate) == "" {
			res.Errors = append(res.Errors, inputval.FieldError{
				Field: "Start date", Message: "Start date must be a valid date.",
			})
		}
		t := requireDate(res, "Start date", *in.StartDate)
		if !t.IsZero() {
			set["start_date"] = t
			start = &t
		}
	}
	if in.EndDate != nil {
		if strings.TrimSpace(*in.EndDate) == "" {
			set["end_date"] = nil
		} else {
			t := requireDate(res, "End date", *in.EndDate)
			if !t.IsZero() {
				set["end_date"] = t
				end = &t
			}
		}
	}
	if in.IsCurrent != nil {
		set["is_current"] = *in.IsCurrent
	}
	if in.Grade != nil {
		set["grade"] = strings.TrimSpace(*in.Grade)
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Order != nil {
		set["order"] = *in.Order
	}

	if err := res.Err(); err != nil {
		return nil, nil, nil, err
	}
	return set, start, end, nil
}

/* -------------------------------- skills -------------------------------- */

type createSkillInput struct {
	Name        string `json:"name" validate:"required,min=2,max=50" label:"Name"`
	Category    string `json:"category" validate:"required,min=2,max=50" label:"Category"`
	Proficiency *int   `json:"proficiency" validate:"omitnil,gte=0,lte=100" label:"Proficiency"`
	Icon        string `json:"icon" validate:"omitempty,max=100" label:"Icon"`
	Order       int    `json:"order" validate:"gte=0" label:"Order"`
}

func (in *createSkillInput) model() *models.Skill {
	return &models.Skill{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Proficiency: in.Proficiency,
		Icon:        strings.TrimSpace(in.Icon),
		Order:       in.Order,
	}
}

type updateSkillInput struct {
	Name        *string `json:"name" validate:"omitnil,min=2,max=50" label:"Name"`
	Category    *string `json:"category" validate:"omitnil,min=2,max=50" label:"Category"`
	Proficiency *int    `json:"proficiency" validate:"omitnil,gte=0,lte=100" label:"Proficiency"`
	Icon        *string `json:"icon" validate:"omitnil,max=100" label:"Icon"`
	Order       *int    `json:"order" validate:"omitnil,gte=0" label:"Order"`
}

func (in *updateSkillInput) set() bson.M {
	set := bson.M{}
	if in.Name != nil {
		set["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		set["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Proficiency != nil {
		set["proficiency"] = *in.Proficiency
	}
	if in.Icon != nil {
		set["icon"] = strings.TrimSpace(*in.Icon)
	}
	if in.Order != nil {
		set["order"] = *in.Order
	}
	return set
}

/* ----------------------------- certifications ---------------------------- */

type createCertificationInput struct {
	Name   string `json:"name" validate:"required,max=200" label:"Name"`
	Issuer string `json:"issuer" validate:"required,max=200" label:"Issuer"`

	IssueDate  string `json:"issueDate" validate:"required" label:"Issue date"`
	ExpiryDate string `json:"expiryDate" label:"Expiry date"`

	CredentialID  string `json:"credentialId" validate:"omitempty,max=200" label:"Credential ID"`
	CredentialURL string `json:"credentialUrl" validate:"omitempty,httpurl" label:"Credential URL"`
	Description   string `json:"description" validate:"omitempty,max=2000" label:"Description"`

	Order int `json:"order" validate:"gte=0" label:"Order"`
}

func (in *createCertificationInput) model() (*models.Certification, error) {
	res := inputval.Validate(in)
	issued := requireDate(res, "Issue date", in.IssueDate)
	expires := optionalDate(res, "Expiry date", in.ExpiryDate)
	checkDateOrder(res, "Issue date", "Expiry date", issued, expires)
	if err := res.Err(); err != nil {
		return nil, err
	}

	return &models.Certification{
		Name:          strings.TrimSpace(in.Name),
		Issuer:        strings.TrimSpace(in.Issuer),
		IssueDate:     issued,
		ExpiryDate:    expires,
		CredentialID:  strings.TrimSpace(in.CredentialID),
		CredentialURL: strings.TrimSpace(in.CredentialURL),
		Description:   strings.TrimSpace(in.Description),
		Order:         in.Order,
	}, nil
}

type updateCertificationInput struct {
	Name   *string `json:"name" validate:"omitnil,min=1,max=200" label:"Name"`
	Issuer *string `json:"issuer" validate:"omitnil,min=1,max=200" label:"Issuer"`

	IssueDate  *string `json:"issueDate" label:"Issue date"`
	ExpiryDate *string `json:"expiryDate" label:"Expiry date"`

	CredentialID  *string `json:"credentialId" validate:"omitnil,max=200" label:"Credential ID"`
	CredentialURL *string `json:"credentialUrl" validate:"omitnil,omitempty,httpurl" label:"Credential URL"`
	Description   *string `json:"description" validate:"omitnil,max=2000" label:"Description"`

	Order *int `json:"order" validate:"omitnil,gte=0" label:"Order"`
}

func (in *updateCertificationInput) build() (set bson.M, issued, expires *time.Time, err error) {
	res := inputval.Validate(in)
	set = bson.M{}

	if in.Name != nil {
		set["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Issuer != nil {
		set["issuer"] = strings.TrimSpace(*in.Issuer)
	}
	if in.IssueDate != nil {
		if strings.TrimSpace(*in.IssueDate) == "" {
			res.Errors = append(res.Errors, inputval.FieldError{
				Field: "Issue date", Message: "Issue date must be a valid date.",
			})
		}
		t := requireDate(res, "Issue date", *in.IssueDate)
		if !t.IsZero() {
			set["issue_date"] = t
			issued = &t
		}
	}
	if in.ExpiryDate != nil {
		if strings.TrimSpace(*in.ExpiryDate) == "" {
			set["expiry_date"] = nil
		} else {
			t := requireDate(res, "Expiry date", *in.ExpiryDate)
			if !t.IsZero() {
				set["expiry_date"] = t
				expires = &t
			}
		}
	}
	if in.CredentialID != nil {
		set["credential_id"] = strings.TrimSpace(*in.CredentialID)
	}
	if in.CredentialURL != nil {
		set["credential_url"] = strings.TrimSpace(*in.CredentialURL)
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Order != nil {
		set["order"] = *in.Order
	}

	if err := res.Err(); err != nil {
		return nil, nil, nil, err
	}
	return set, issued, expires, nil
}

/* ------------------------------- about card ------------------------------ */

// upsertAboutInput is the PUT /resume/about payload. Like the contact
// card, the upsert always carries the full profile.
type upsertAboutInput struct {
	Name  string `json:"name" validate:"required,max=100" label:"Name"`
	Title string `json:"title" validate:"required,max=200" label:"Title"`
	Email string `json:"email" validate:"required,email" label:"Email"`
	Phone string `json:"phone" validate:"required,phone,max=30" label:"Phone"`
	Bio   string `json:"bio" validate:"required,max=2000" label:"Bio"`

	ProfileImage string            `json:"profileImage" validate:"omitempty,httpurl" label:"Profile image URL"`
	Address      *aboutAddress     `json:"address"`
	SocialLinks  *aboutSocialLinks `json:"socialLinks"`
	Resume       string            `json:"resume" validate:"omitempty,httpurl" label:"Resume URL"`
}

type aboutAddress struct {
	Street  string `json:"street" validate:"omitempty,max=200" label:"Street"`
	City    string `json:"city" validate:"omitempty,max=100" label:"City"`
	State   string `json:"state" validate:"omitempty,max=100" label:"State"`
	Country string `json:"country" validate:"omitempty,max=100" label:"Country"`
	ZipCode string `json:"zipCode" validate:"omitempty,max=20" label:"Zip code"`
}

type aboutSocialLinks struct {
	LinkedIn  string `json:"linkedin" validate:"omitempty,httpurl" label:"LinkedIn URL"`
	Github    string `json:"github" validate:"omitempty,httpurl" label:"GitHub URL"`
	Twitter   string `json:"twitter" validate:"omitempty,httpurl" label:"Twitter URL"`
	Instagram string `json:"instagram" validate:"omitempty,httpurl" label:"Instagram URL"`
	Portfolio string `json:"portfolio" validate:"omitempty,httpurl" label:"Portfolio URL"`
}

func (in *upsertAboutInput) set() bson.M {
	set := bson.M{
		"name":          strings.TrimSpace(in.Name),
		"title":         strings.TrimSpace(in.Title),
		"email":         strings.TrimSpace(in.Email),
		"phone":         strings.TrimSpace(in.Phone),
		"bio":           strings.TrimSpace(in.Bio),
		"profile_image": strings.TrimSpace(in.ProfileImage),
		"resume":        strings.TrimSpace(in.Resume),
	}
	if in.Address != nil {
		set["address"] = &models.Address{
			Street:  strings.TrimSpace(in.Address.Street),
			City:    strings.TrimSpace(in.Address.City),
			State:   strings.TrimSpace(in.Address.State),
			Country: strings.TrimSpace(in.Address.Country),
			ZipCode: strings.TrimSpace(in.Address.ZipCode),
		}
	}
	if in.SocialLinks != nil {
		set["social_links"] = &models.SocialLinks{
			LinkedIn:  strings.TrimSpace(in.SocialLinks.LinkedIn),
			Github:    strings.TrimSpace(in.SocialLinks.Github),
			Twitter:   strings.TrimSpace(in.SocialLinks.Twitter),
			Instagram: strings.TrimSpace(in.SocialLinks.Instagram),
			Portfolio: strings.TrimSpace(in.SocialLinks.Portfolio),
		}
	}
	return set
}
