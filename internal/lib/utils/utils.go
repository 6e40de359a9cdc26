// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random 32-character lowercase hex id.
//
// It is a v4 UUID with the dashes stripped.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NextID generates ids until taken reports one as unused.
//
// A nil taken accepts the first id.
func NextID(taken func(id string) bool) string {
	for {
		id := NewID()
		if taken == nil || !taken(id) {
			return id
		}
	}
}
