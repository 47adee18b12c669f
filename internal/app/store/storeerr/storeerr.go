// internal/app/store/storeerr/storeerr.go

// Package storeerr defines the failure classes the store layer and
// handlers signal with, so the response layer can derive status codes
// from classification instead of message text.
package storeerr

import "errors"

// Sentinel classes. Stores return these bare; handlers that want a
// resource-specific message wrap them with WithMessage.
var (
	// ErrNotFound: a valid identifier matched no document.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID: a path parameter is not a valid ObjectID hex
	// string. Detected before any store call.
	ErrInvalidID = errors.New("invalid document id")

	// ErrDuplicate: a unique-index constraint was violated.
	ErrDuplicate = errors.New("duplicate document")

	// ErrInvalidDocument: the server rejected a write against a
	// collection's $jsonSchema validator.
	ErrInvalidDocument = errors.New("document failed validation")
)

// classified pairs a sentinel class with a caller-facing message.
type classified struct {
	class error
	msg   string
}

func (e *classified) Error() string { return e.msg }
func (e *classified) Unwrap() error { return e.class }

// WithMessage returns an error that reads as msg but still matches
// class under errors.Is.
func WithMessage(class error, msg string) error {
	return &classified{class: class, msg: msg}
}

// NotFound returns an ErrNotFound carrying a resource-specific
// message, e.g. "Project not found".
func NotFound(msg string) error { return WithMessage(ErrNotFound, msg) }

// InvalidID returns an ErrInvalidID carrying a resource-specific
// message, e.g. "Invalid project ID format".
func InvalidID(msg string) error { return WithMessage(ErrInvalidID, msg) }

// Duplicate returns an ErrDuplicate carrying a resource-specific
// message.
func Duplicate(msg string) error { return WithMessage(ErrDuplicate, msg) }
