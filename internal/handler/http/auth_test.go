// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedLink Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink-app/medlink-api/internal/service"
	"github.com/medlink-app/medlink-api/internal/store"
	"github.com/medlink-app/medlink-api/internal/utils"
	"github.com/medlink-app/medlink-api/models"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterUserRequest) (models.User, models.Token, error) {
			user := models.User{UserID: 1, Email: req.Email, Role: models.RoleUser, IsActive: true}
			return user, stubToken("signed.jwt.token", 1, models.RoleUser), nil
		},
	}
	h := newTestHandler(t, auth, nil)

	body := jsonBody(t, models.RegisterUserRequest{
		Email: "alice@example.com", Password: "Passw0rd1",
		FirstName: "Alice", LastName: "Smith",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	// The password hash must never serialize.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterUserRequest) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterUserRequest) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// registerDoctor
// ─────────────────────────────────────────────

func TestRegisterDoctor_Success(t *testing.T) {
	auth := &mockAuthService{
		registerDoctorFn: func(_ context.Context, req models.RegisterDoctorRequest) (models.User, error) {
			return models.User{
				UserID: 5, Email: req.Email, Role: models.RoleDoctor,
				DoctorStatus: models.DoctorPending,
			}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	body := jsonBody(t, models.RegisterDoctorRequest{
		Email: "bob@example.com", Password: "Passw0rd1",
		FirstName: "Bob", LastName: "Jones",
		DoctorLicenseNumber: "LIC-1", MedicalInstitution: "City Hospital",
		Specialization: "Cardiology",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register-doctor", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.registerDoctor(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.DoctorRegistrationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.DoctorID)
	assert.NotEmpty(t, resp.Message)
	// No token is issued for a pending doctor.
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestRegisterDoctor_DuplicateLicense(t *testing.T) {
	auth := &mockAuthService{
		registerDoctorFn: func(_ context.Context, req models.RegisterDoctorRequest) (models.User, error) {
			return models.User{}, store.ErrLicenseAlreadyExists
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register-doctor", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.registerDoctor(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, models.Token, error) {
			return models.User{UserID: 1, Email: req.Email}, stubToken("signed.jwt.token", 1, models.RoleUser), nil
		},
	}
	h := newTestHandler(t, auth, nil)

	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "Passw0rd1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestLogin_FailureStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"deactivated", service.ErrAccountDeactivated, http.StatusUnauthorized, "account is deactivated"},
		{"doctor not approved", service.ErrDoctorNotApproved, http.StatusUnauthorized, "doctor account is not approved yet"},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid data provided"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, req models.LoginRequest) (models.User, models.Token, error) {
					return models.User{}, models.Token{}, tt.err
				},
			}
			h := newTestHandler(t, auth, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantText != "" {
				assert.Contains(t, rec.Body.String(), tt.wantText)
			}
		})
	}
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	auth := &mockAuthService{
		currentUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "alice@example.com"}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, int64(1))
	rec := httptest.NewRecorder()

	h.me(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.UserID)
}

func TestMe_NoContextUserID(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_SubjectGone(t *testing.T) {
	auth := &mockAuthService{
		currentUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, int64(404))
	rec := httptest.NewRecorder()

	h.me(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// pendingDoctors / approveDoctor
// ─────────────────────────────────────────────

func TestPendingDoctors(t *testing.T) {
	auth := &mockAuthService{
		listPendingDoctorsFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{
				UserID: 5, Email: "doc@example.com", Role: models.RoleDoctor,
				DoctorLicenseNumber: "LIC-1", DoctorStatus: models.DoctorPending,
				PasswordHash: "secret-hash",
			}}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/pending-doctors", nil)
	rec := httptest.NewRecorder()

	h.pendingDoctors(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var views []models.PendingDoctor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, int64(5), views[0].ID)
	assert.Equal(t, "LIC-1", views[0].DoctorLicenseNumber)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestApproveDoctor_Success(t *testing.T) {
	var gotAdminID int64
	auth := &mockAuthService{
		updateDoctorStatusFn: func(_ context.Context, adminID int64, req models.DoctorApprovalRequest) (models.User, error) {
			gotAdminID = adminID
			return models.User{
				UserID: req.DoctorID, Role: models.RoleDoctor,
				DoctorStatus: req.Status,
			}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	body := jsonBody(t, models.DoctorApprovalRequest{DoctorID: 5, Status: models.DoctorApproved})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/approve-doctor", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, int64(99))
	rec := httptest.NewRecorder()

	h.approveDoctor(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(99), gotAdminID)

	var resp models.DoctorApprovalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.DoctorApproved, resp.Doctor.DoctorStatus)
}

func TestApproveDoctor_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid status", service.ErrInvalidDoctorStatus, http.StatusBadRequest},
		{"doctor not found", service.ErrDoctorNotFound, http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				updateDoctorStatusFn: func(_ context.Context, adminID int64, req models.DoctorApprovalRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			h := newTestHandler(t, auth, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/approve-doctor", strings.NewReader(`{"doctorId":5,"status":"Approved"}`))
			ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, int64(99))
			rec := httptest.NewRecorder()

			h.approveDoctor(rec, req.WithContext(ctx))

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
