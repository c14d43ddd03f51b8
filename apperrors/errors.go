package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or out-of-range input. It is always
// detected before any storage access and is safe to surface in full.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d field errors)", len(e.Details))
}

func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }

// Add appends a field-level failure and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Details = append(e.Details, FieldError{Field: field, Message: message})
	return e
}

// Empty reports whether any field failed.
func (e *ValidationError) Empty() bool { return len(e.Details) == 0 }

// ConflictError reports a uniqueness violation (username or email taken).
// The client treats it like any other bad request, so it surfaces as a 400
// with a plain message.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string   { return e.Message }
func (e *ConflictError) HTTPStatus() int { return http.StatusBadRequest }

// AuthError covers every authentication failure. The message is the same
// generic string regardless of internal cause so callers cannot enumerate
// usernames or distinguish bad passwords from corrupted hashes.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string   { return e.Message }
func (e *AuthError) HTTPStatus() int { return http.StatusUnauthorized }

// NotFoundError is the merged "does not exist or is not yours" outcome for
// owner-scoped resources.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string   { return e.Resource + " not found" }
func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }

// Sentinel messages reused across the auth paths.
const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgNotAuthenticated   = "Not authenticated"
)

func NewValidation() *ValidationError {
	return &ValidationError{}
}

func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func Unauthorized() *AuthError {
	return &AuthError{Message: MsgInvalidCredentials}
}

func NotAuthenticated() *AuthError {
	return &AuthError{Message: MsgNotAuthenticated}
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// statusError is implemented by every typed error above.
type statusError interface {
	error
	HTTPStatus() int
}

// Status returns the HTTP status for err, or 500 for anything untyped.
func Status(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is the merged not-found outcome.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
