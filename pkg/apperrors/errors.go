// Package apperrors defines the domain error taxonomy shared by services
// and the HTTP boundary. Every error carries the status it maps to, so the
// response layer never has to guess.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is a domain error with a fixed HTTP status and client-safe message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation reports missing or malformed input (400).
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Conflict reports a duplicate unique key (409).
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Auth reports bad credentials or a missing/invalid/expired token (401).
func Auth(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NotFound reports an unmatched route (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal is the generic 500. The message is deliberately fixed so store
// or driver detail never leaks to the client.
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error"}
}

// From extracts a *Error from err, or nil when err is not a domain error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
