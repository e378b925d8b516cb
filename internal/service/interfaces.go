package service

import (
	"context"

	"github.com/medlink-app/medlink-api/models"
)

// AuthService orchestrates registration, login, the doctor-approval
// workflow, and identity token issuance/validation.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, models.Token, error)
	RegisterDoctor(ctx context.Context, req models.RegisterDoctorRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	CurrentUser(ctx context.Context, userID int64) (models.User, error)
	ListPendingDoctors(ctx context.Context) ([]models.User, error)
	UpdateDoctorStatus(ctx context.Context, adminID int64, req models.DoctorApprovalRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	EnsureAdmin(ctx context.Context) error
}

// ProfileService manages emergency profiles: creation with a fresh public
// id, owner-scoped and global listings, and the unauthenticated public
// lookup.
type ProfileService interface {
	CreateProfile(ctx context.Context, req models.CreateProfileRequest, ownerID int64) (models.EmergencyProfile, error)
	ListProfiles(ctx context.Context) ([]models.EmergencyProfile, error)
	ListProfilesByOwner(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error)
	FindProfileByPublicID(ctx context.Context, publicID string) (models.EmergencyProfile, error)
	DatabaseInfo(ctx context.Context) (models.DatabaseInfoResponse, error)
}
