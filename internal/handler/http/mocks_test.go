package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/service"
	"github.com/medlink-app/medlink-api/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn       func(ctx context.Context, req models.RegisterUserRequest) (models.User, models.Token, error)
	registerDoctorFn     func(ctx context.Context, req models.RegisterDoctorRequest) (models.User, error)
	loginFn              func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	currentUserFn        func(ctx context.Context, userID int64) (models.User, error)
	listPendingDoctorsFn func(ctx context.Context) ([]models.User, error)
	updateDoctorStatusFn func(ctx context.Context, adminID int64, req models.DoctorApprovalRequest) (models.User, error)
	createTokenFn        func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn         func(ctx context.Context, tokenString string) (models.Token, error)
	ensureAdminFn        func(ctx context.Context) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, models.Token, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) RegisterDoctor(ctx context.Context, req models.RegisterDoctorRequest) (models.User, error) {
	return m.registerDoctorFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	return m.currentUserFn(ctx, userID)
}

func (m *mockAuthService) ListPendingDoctors(ctx context.Context) ([]models.User, error) {
	return m.listPendingDoctorsFn(ctx)
}

func (m *mockAuthService) UpdateDoctorStatus(ctx context.Context, adminID int64, req models.DoctorApprovalRequest) (models.User, error) {
	return m.updateDoctorStatusFn(ctx, adminID, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureAdmin(ctx context.Context) error {
	if m.ensureAdminFn != nil {
		return m.ensureAdminFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	createProfileFn       func(ctx context.Context, req models.CreateProfileRequest, ownerID int64) (models.EmergencyProfile, error)
	listProfilesFn        func(ctx context.Context) ([]models.EmergencyProfile, error)
	listProfilesByOwnerFn func(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error)
	findProfileFn         func(ctx context.Context, publicID string) (models.EmergencyProfile, error)
	databaseInfoFn        func(ctx context.Context) (models.DatabaseInfoResponse, error)
}

func (m *mockProfileService) CreateProfile(ctx context.Context, req models.CreateProfileRequest, ownerID int64) (models.EmergencyProfile, error) {
	return m.createProfileFn(ctx, req, ownerID)
}

func (m *mockProfileService) ListProfiles(ctx context.Context) ([]models.EmergencyProfile, error) {
	return m.listProfilesFn(ctx)
}

func (m *mockProfileService) ListProfilesByOwner(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error) {
	return m.listProfilesByOwnerFn(ctx, ownerID)
}

func (m *mockProfileService) FindProfileByPublicID(ctx context.Context, publicID string) (models.EmergencyProfile, error) {
	return m.findProfileFn(ctx, publicID)
}

func (m *mockProfileService) DatabaseInfo(ctx context.Context) (models.DatabaseInfoResponse, error) {
	return m.databaseInfoFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Either mock
// may be nil when the routes under test never reach it.
func newTestHandler(t *testing.T, auth service.AuthService, profiles service.ProfileService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		ProfileService: profiles,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises any value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and subject.
func stubToken(signed string, userID int64, role models.UserRole) models.Token {
	return models.Token{
		SignedString: signed,
		UserID:       userID,
		Claims:       models.TokenClaims{Role: role},
	}
}
