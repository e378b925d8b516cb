package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials deliberately covers both "unknown email" and
	// "wrong password" so login failures do not reveal which one happened.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrDoctorNotApproved  = errors.New("doctor account is not approved yet")

	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInvalidDoctorStatus = errors.New("invalid doctor status")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrPublicIDExhausted is returned when repeated public-id generation
	// attempts all collided with existing profiles.
	ErrPublicIDExhausted = errors.New("could not allocate a unique public id")
)
