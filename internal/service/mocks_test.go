package service

import (
	"context"

	"github.com/medlink-app/medlink-api/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, id int64) (models.User, error)
	listPendingDoctorsFn func(ctx context.Context) ([]models.User, error)
	updateUserFn         func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListPendingDoctors(ctx context.Context) ([]models.User, error) {
	if m.listPendingDoctorsFn != nil {
		return m.listPendingDoctorsFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, user)
	}
	return user, nil
}

// ─────────────────────────────────────────────
// Mock: store.ProfileRepository
// ─────────────────────────────────────────────

type mockProfileRepository struct {
	createProfileFn       func(ctx context.Context, profile models.EmergencyProfile) (models.EmergencyProfile, error)
	listProfilesFn        func(ctx context.Context) ([]models.EmergencyProfile, error)
	listProfilesByOwnerFn func(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error)
	findProfileByPublicFn func(ctx context.Context, publicID string) (models.EmergencyProfile, error)
}

func (m *mockProfileRepository) CreateProfile(ctx context.Context, profile models.EmergencyProfile) (models.EmergencyProfile, error) {
	if m.createProfileFn != nil {
		return m.createProfileFn(ctx, profile)
	}
	return profile, nil
}

func (m *mockProfileRepository) ListProfiles(ctx context.Context) ([]models.EmergencyProfile, error) {
	if m.listProfilesFn != nil {
		return m.listProfilesFn(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepository) ListProfilesByOwner(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error) {
	if m.listProfilesByOwnerFn != nil {
		return m.listProfilesByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindProfileByPublicID(ctx context.Context, publicID string) (models.EmergencyProfile, error) {
	if m.findProfileByPublicFn != nil {
		return m.findProfileByPublicFn(ctx, publicID)
	}
	return models.EmergencyProfile{}, nil
}
