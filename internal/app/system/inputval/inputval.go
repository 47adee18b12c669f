// internal/app/system/inputval/inputval.go

// Package inputval validates request input before it reaches the
// store. Struct fields declare rules with `validate` tags and a
// human-readable `label` tag used in messages:
//
//	type createServiceInput struct {
//	    Title       string `validate:"required,max=200" label:"Title"`
//	    Description string `validate:"required,max=2000" label:"Description"`
//	}
//
// Validate returns a Result whose messages are safe to hand straight
// back to the client.
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string // label (or field name when no label tag is set)
	Message string
}

// Result collects the field errors from one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" when validation passed.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; " for single-line reporting.
func (r *Result) All() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Err wraps the result as an error for the respond layer, which maps
// it to a 400. Returns nil when validation passed.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &ValidationError{Result: r}
}

// ValidationError carries a failed Result across an error boundary.
type ValidationError struct {
	Result *Result
}

func (e *ValidationError) Error() string { return e.Result.All() }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Messages name fields by their label tag.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	// The built-in email rule accepts single-label domains
	// (user@localhost); the API requires local@domain.tld.
	_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return IsValidHTTPURL(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return IsValidObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("msgstatus", func(fl validator.FieldLevel) bool {
		return IsValidMessageStatus(fl.Field().String())
	})

	return v
}

// Validate runs the struct's tag rules and returns the collected
// errors. A nil-safe zero Result means the input is acceptable.
func Validate(input any) *Result {
	res := &Result{}

	err := validate.Struct(input)
	if err == nil {
		return res
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-struct input is a programming error; report it as a
		// generic failure rather than panicking mid-request.
		res.Errors = append(res.Errors, FieldError{Message: "Invalid input."})
		return res
	}

	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return res
}

// message renders one failed rule as a client-facing sentence.
func message(fe validator.FieldError) string {
	label := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return "A valid email address is required."
	case "httpurl":
		return fmt.Sprintf("%s must be a valid http(s) URL.", label)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number.", label)
	case "objectid":
		return fmt.Sprintf("%s must be a valid ID.", label)
	case "msgstatus":
		return fmt.Sprintf("%s must be one of: %s.", label, "unread, read, responded")
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must not be empty.", label)
		}
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at most %s items.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
