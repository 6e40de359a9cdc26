// Package model holds the records served by the API.
//
// Records are plain values: repositories store and hand out copies, and
// an update replaces every mutable field at once.
package model

// Record is implemented by every stored resource.
type Record interface {
	GetID() string
}
