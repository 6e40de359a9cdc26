package errs

import (
	"fmt"
	"net/http"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Used by every validator stage: missing fields, invalid price or dishes,
// id mismatch, locked status and deletion of a non-pending order.
func NewBadRequestError(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewMethodNotAllowedError creates a 405 for a known path hit with an unsupported method.
func NewMethodNotAllowedError(method, path string) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", method, path))
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
