package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an Error with the class of failure it represents.
type Kind int

const (
	// KindNotFound marks a missing or soft-deleted entity.
	KindNotFound Kind = iota + 1
	// KindBadRequest marks empty or invalid input.
	KindBadRequest
	// KindUnauthorized marks a missing or invalid token, bad credentials or
	// access to another user's data.
	KindUnauthorized
)

// Error is the error type returned by the service and repository layers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status mirroring the error kind.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest creates a KindBadRequest error.
func BadRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsBadRequest reports whether err is a KindBadRequest error.
func IsBadRequest(err error) bool { return KindOf(err) == KindBadRequest }

// IsUnauthorized reports whether err is a KindUnauthorized error.
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }

// ErrorBody is the inner object of an error response.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: e.Message, Status: e.StatusCode}}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The message of a tagged
// error passes through unchanged; anything else is hidden behind a 500.
func MapErrorToHTTP(err error) *HTTPError {
	var appErr *Error
	if errors.As(err, &appErr) {
		return NewHTTPError(appErr.StatusCode(), appErr.Message)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error")
}
