package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is an error that maps directly to a status code and a message
// safe to show to the client.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NotFound(msg string) *HTTPError     { return &HTTPError{Status: http.StatusNotFound, Message: msg} }
func Unauthorized(msg string) *HTTPError { return &HTTPError{Status: http.StatusUnauthorized, Message: msg} }
func Conflict(msg string) *HTTPError     { return &HTTPError{Status: http.StatusConflict, Message: msg} }
func BadRequest(msg string) *HTTPError   { return &HTTPError{Status: http.StatusBadRequest, Message: msg} }

// ErrUnauthenticated is returned by the auth middleware when no valid
// session is attached to the request.
var ErrUnauthenticated = Unauthorized("Unauthorized")

// FieldError is a single failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError reports every field that failed its schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Message
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError from individual failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// StatusOf returns the HTTP status the error maps to.
func StatusOf(err error) int {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Status
	}
	return http.StatusInternalServerError
}
