package common

import (
	"errors"
	"fmt"
)

// Stable numeric error taxonomy shared with the photo API clients.
const (
	CodeMissingRequiredParams = 10
	CodeInvalidParams         = 20
	CodeInvalidFormat         = 30
	CodeMissingAlbum          = 40
	CodeMissingWidth          = 50
	CodeMissingPhoto          = 60
	CodeMissingJWT            = 70
	CodeResizeFailure         = 200
)

// Error represents a standardized error with code and message
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// NewError creates a new Error instance
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithCause returns a copy of the error carrying the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by taxonomy code so wrapped copies compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidFormat = NewError(CodeInvalidFormat, "invalid format")
	ErrMissingAlbum  = NewError(CodeMissingAlbum, "missing album param")
	ErrMissingWidth  = NewError(CodeMissingWidth, "missing width param")
	ErrMissingPhoto  = NewError(CodeMissingPhoto, "missing photo")
	ErrMissingJWT    = NewError(CodeMissingJWT, "missing jwt credential")
	ErrResizeFailure = NewError(CodeResizeFailure, "resize failure")
)

// CodeOf extracts the taxonomy code from any error, falling back to
// invalid-params for causes outside the closed set.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInvalidParams
}
