package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued identity token.
//
// It extends the registered JWT claims (iss, aud, sub, exp, iat) with the
// identity facts route handlers need without a store round-trip: email,
// display name and role, plus the doctor-only claims when the subject is a
// Doctor account.
type TokenClaims struct {
	jwt.RegisteredClaims

	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`

	// Doctor-only claims. Empty for User and Admin subjects.
	DoctorStatus   DoctorStatus `json:"doctorStatus,omitempty"`
	LicenseNumber  string       `json:"licenseNumber,omitempty"`
	Specialization string       `json:"specialization,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and carries the decoded [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64, populated during generation and validation to avoid repeated
// string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded identity claim set.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString := t.Claims.Subject
	if userIDString == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
