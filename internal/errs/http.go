package errs

import "strings"

// HTTPError is the error type for API responses.
//
// It implements the `error` interface via Error().
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), used in logs.
//   - Message: human-friendly message sent to the client.
//   - Status: HTTP status code.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Response is the body written for every failed request.
//
//	{ "error": "Dish must include a name" }
type Response struct {
	Error string `json:"error"`
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
