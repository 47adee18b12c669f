// internal/domain/models/resume.go
package models

import "time"

// Experience is one work-history entry. EndDate is zero for current
// positions; when set it must be after StartDate. Listing orders by
// StartDate, newest first.
type Experience struct {
	Meta `bson:",inline"`

	Company  string `bson:"company" json:"company"`
	Position string `bson:"position" json:"position"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`

	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date,omitempty" json:"endDate,omitzero"`
	IsCurrent bool      `bson:"is_current" json:"isCurrent"`

	Description      string   `bson:"description" json:"description"`
	Responsibilities []string `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	Technologies     []string `bson:"technologies,omitempty" json:"technologies,omitempty"`

	Order int `bson:"order" json:"order"`
}

// Education is one education entry, with the same date rules as
// Experience.
type Education struct {
	Meta `bson:",inline"`

	Institution  string `bson:"institution" json:"institution"`
	Degree       string `bson:"degree" json:"degree"`
	FieldOfStudy string `bson:"field_of_study" json:"fieldOfStudy"`
	Location     string `bson:"location,omitempty" json:"location,omitempty"`

	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date,omitempty" json:"endDate,omitzero"`
	IsCurrent bool      `bson:"is_current" json:"isCurrent"`

	Grade       string `bson:"grade,omitempty" json:"grade,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Order int `bson:"order" json:"order"`
}

// Skill is one skill entry. Proficiency is a 0-100 percentage; nil
// means not rated. Listing orders by category, then strongest first.
type Skill struct {
	Meta `bson:",inline"`

	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"`
	Proficiency *int   `bson:"proficiency,omitempty" json:"proficiency,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

// Certification is one certification entry. ExpiryDate, when set,
// must be after IssueDate. Listing orders by ascending Order, then
// most recently issued first.
type Certification struct {
	Meta `bson:",inline"`

	Name   string `bson:"name" json:"name"`
	Issuer string `bson:"issuer" json:"issuer"`

	IssueDate  time.Time `bson:"issue_date" json:"issueDate"`
	ExpiryDate time.Time `bson:"expiry_date,omitempty" json:"expiryDate,omitzero"`

	CredentialID  string `bson:"credential_id,omitempty" json:"credentialId,omitempty"`
	CredentialURL string `bson:"credential_url,omitempty" json:"credentialUrl,omitempty"`
	Description   string `bson:"description,omitempty" json:"description,omitempty"`

	Order int `bson:"order" json:"order"`
}
