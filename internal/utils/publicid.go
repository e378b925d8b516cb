package utils

import "github.com/google/uuid"

// PublicIDLength is the length of an emergency profile's external lookup key.
const PublicIDLength = 8

// NewPublicID generates a fresh short public identifier: the first
// PublicIDLength characters of a random UUID. Unguessable enough for casual
// inspection but not cryptographically hardened; uniqueness is enforced by
// the store, and callers regenerate on conflict.
func NewPublicID() string {
	return uuid.NewString()[:PublicIDLength]
}
