// internal/app/system/respond/respond.go

// Package respond owns the JSON envelope every endpoint returns and
// the one place failures are mapped to HTTP status codes.
//
// Success bodies are {"success":true,"data":…,"message":…}; failure
// bodies are {"success":false,"error":…}, with a detail field added
// outside production. Status derivation inspects the error's
// classification (storeerr sentinels, inputval.ValidationError), never
// its message text.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/folio/internal/app/store/storeerr"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"go.uber.org/zap"
)

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	// Detail carries the underlying error text for 5xx responses in
	// non-production environments only.
	Detail string `json:"detail,omitempty"`
}

// Responder writes envelopes. One is constructed in bootstrap and
// injected into every feature handler.
type Responder struct {
	Log *zap.Logger

	// Dev enables the Detail field on server errors.
	Dev bool
}

// New constructs a Responder. dev should be true outside production.
func New(logger *zap.Logger, dev bool) *Responder {
	return &Responder{Log: logger, Dev: dev}
}

// OK writes a 200 envelope. data may be nil (e.g. delete responses).
func (a *Responder) OK(w http.ResponseWriter, message string, data any) {
	a.write(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 envelope.
func (a *Responder) Created(w http.ResponseWriter, message string, data any) {
	a.write(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail classifies err and writes the matching failure envelope.
// fallback is the client-facing message for unclassified (500)
// failures; the raw error is logged, never sent, on that path.
func (a *Responder) Fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *inputval.ValidationError

	switch {
	case errors.Is(err, ErrBodyTooLarge):
		a.FailStatus(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, storeerr.ErrInvalidID), errors.Is(err, ErrBadJSON):
		a.FailStatus(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		a.FailStatus(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, storeerr.ErrDuplicate):
		a.FailStatus(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storeerr.ErrInvalidDocument):
		a.FailStatus(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storeerr.ErrNotFound):
		a.FailStatus(w, http.StatusNotFound, err.Error())
	default:
		a.serverError(w, r, err, fallback)
	}
}

// FailStatus writes a failure envelope with an explicit status.
func (a *Responder) FailStatus(w http.ResponseWriter, status int, message string) {
	a.write(w, status, Envelope{Success: false, Error: message})
}

// NotFoundHandler is the catch-all for unmatched routes.
func (a *Responder) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	a.FailStatus(w, http.StatusNotFound, "Not Found - "+r.URL.Path)
}

// MethodNotAllowedHandler answers verb mismatches on known routes.
func (a *Responder) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	a.FailStatus(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func (a *Responder) serverError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if fallback == "" {
		fallback = "Internal Server Error"
	}
	a.Log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	env := Envelope{Success: false, Error: fallback}
	if a.Dev && err != nil {
		env.Detail = err.Error()
	}
	a.write(w, http.StatusInternalServerError, env)
}

func (a *Responder) write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		a.Log.Error("encode response failed", zap.Error(err))
	}
}
