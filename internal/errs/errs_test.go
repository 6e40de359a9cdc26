package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *HTTPError
		status  int
		code    string
		message string
	}{
		{"bad request", NewBadRequestError("Dish must include a name"), http.StatusBadRequest, "BAD_REQUEST", "Dish must include a name"},
		{"not found", NewNotFoundError("Dish does not exist: 42"), http.StatusNotFound, "NOT_FOUND", "Dish does not exist: 42"},
		{"method not allowed", NewMethodNotAllowedError("DELETE", "/dishes/1"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "DELETE not allowed for /dishes/1"},
		{"too many requests", NewTooManyRequestsError(), http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too Many Requests"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestHTTPErrorSurvivesWrapping(t *testing.T) {
	base := NewBadRequestError("An order cannot be deleted unless it is pending")
	wrapped := fmt.Errorf("orders.delete: isPending: %w", base)

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}
