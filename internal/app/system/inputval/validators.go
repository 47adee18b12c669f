// internal/app/system/inputval/validators.go
package inputval

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// local@domain.tld; a dot in the domain is required, so
	// single-label hosts like user@localhost are rejected.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits plus common separators.
	phoneRe = regexp.MustCompile(`^[\d\s\-+()]+$`)

	objectIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// IsValidHTTPURL reports whether s is an absolute http(s) URL.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidPhone reports whether s is digits plus separators only.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

// IsValidObjectID reports whether s is a 24-character hex ObjectID.
// This runs on every :id path parameter before any store call.
func IsValidObjectID(s string) bool {
	return objectIDRe.MatchString(strings.TrimSpace(s))
}

// ObjectID parses a path parameter into an ObjectID. The regexp check
// runs first so oddly cased but parseable values give the same answer
// as IsValidObjectID.
func ObjectID(s string) (primitive.ObjectID, bool) {
	s = strings.TrimSpace(s)
	if !objectIDRe.MatchString(s) {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(strings.ToLower(s))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// IsValidMessageStatus reports whether s is one of the closed
// contact-message status set (case-insensitive, trimmed).
func IsValidMessageStatus(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range models.MessageStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Date layouts accepted on the wire.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a request date as RFC 3339 or plain YYYY-MM-DD and
// normalizes it to UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
