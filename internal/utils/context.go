// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and
// public-identifier generation.
package utils

import (
	"context"

	"github.com/medlink-app/medlink-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// ClaimsCtxKey is the key used to store the validated token claim set in the
// context, so downstream handlers can read identity facts (role, email)
// without re-parsing the token.
var ClaimsCtxKey = contextKey("claims")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetClaimsFromContext retrieves the validated token claims from the context.
//
// Returns the claim set and an ok flag mirroring GetUserIDFromContext.
func GetClaimsFromContext(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.TokenClaims)
	return claims, ok
}
