package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrLicenseAlreadyExists is returned when a doctor registration fails
	// because another doctor already holds the same license number.
	ErrLicenseAlreadyExists = errors.New("license number already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPublicIDAlreadyExists is returned when an insert of an emergency
	// profile collides with an existing public id. The caller regenerates
	// the id and retries; the existing record is never overwritten.
	ErrPublicIDAlreadyExists = errors.New("public id already exists")

	// ErrProfileNotFound is returned when a lookup targets an emergency
	// profile that does not exist.
	ErrProfileNotFound = errors.New("emergency profile was not found")
)
