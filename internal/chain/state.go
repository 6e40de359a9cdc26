package chain

import "net/http"

// State is the per-request scratch space threaded through one chain run.
//
// It holds the route id, the raw payload and at most one record attached
// by a loader stage. A State is never shared between requests.
type State[T any] struct {
	RouteID string
	Payload Payload

	record T
	loaded bool
}

// NewState creates the state for a single chain run.
func NewState[T any](routeID string, payload Payload) *State[T] {
	return &State[T]{
		RouteID: routeID,
		Payload: payload,
	}
}

// Attach stores the record resolved by a loader stage.
func (s *State[T]) Attach(record T) {
	s.record = record
	s.loaded = true
}

// Record returns the attached record and whether a loader ran.
func (s *State[T]) Record() (T, bool) {
	return s.record, s.loaded
}

// Result is what a terminal handler produces.
type Result struct {
	Status int
	Data   any
}

// OK is a 200 response carrying data.
func OK(data any) Result { return Result{Status: http.StatusOK, Data: data} }

// Created is a 201 response carrying the new record.
func Created(data any) Result { return Result{Status: http.StatusCreated, Data: data} }

// NoContent is a 204 response with an empty body.
func NoContent() Result { return Result{Status: http.StatusNoContent} }

// HasBody reports whether the result is written as a `{data: ...}` body.
func (r Result) HasBody() bool {
	return r.Status != http.StatusNoContent
}
