// Package errs defines the error types returned to API clients.
//
// Every stage of a request chain fails with an *HTTPError so the global
// error handler can translate it into a status code and a consistent
// `{"error": "..."}` body.
package errs
