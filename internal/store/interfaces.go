package store

import (
	"context"

	"github.com/medlink-app/medlink-api/models"
)

// UserRepository is the Credential Store contract.
//
// CreateUser must perform its uniqueness checks (email, doctor license
// number) and the insert as one logically atomic step, so that two
// concurrent registrations with the same email cannot both succeed.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListPendingDoctors(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// ProfileRepository is the Emergency Profile Store contract.
//
// CreateProfile must reject a duplicate public id with
// [ErrPublicIDAlreadyExists] instead of overwriting; regeneration is the
// caller's responsibility.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.EmergencyProfile) (models.EmergencyProfile, error)
	ListProfiles(ctx context.Context) ([]models.EmergencyProfile, error)
	ListProfilesByOwner(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error)
	FindProfileByPublicID(ctx context.Context, publicID string) (models.EmergencyProfile, error)
}
