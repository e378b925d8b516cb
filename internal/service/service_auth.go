// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedLink Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medlink-app/medlink-api/internal/config"
	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/store"
	"github.com/medlink-app/medlink-api/internal/utils"
	"github.com/medlink-app/medlink-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, the doctor-approval
// workflow, and the JWT token lifecycle, using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience is the "aud" claim embedded in every issued JWT and
	// validated on every authenticated request.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// adminEmail and adminPassword are the seed credentials used by
	// EnsureAdmin when no admin account exists yet.
	adminEmail    string
	adminPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, authCfg config.Auth, adminCfg config.Admin, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   authCfg.TokenSignKey,
		tokenIssuer:    authCfg.TokenIssuer,
		tokenAudience:  authCfg.TokenAudience,
		tokenDuration:  authCfg.TokenDuration,
		adminEmail:     adminCfg.Email,
		adminPassword:  adminCfg.Password,
		logger:         logger,
	}
}

// RegisterUser creates a new patient account and immediately issues a token,
// so registration doubles as login.
//
// Returns the persisted user and token, or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		log.Error().Str("email", req.Email).Msg("invalid user registration data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.UserID).Msg("creation of token failed")
		return models.User{}, models.Token{}, err
	}

	log.Info().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("new user registered")

	return registeredUser, token, nil
}

// RegisterDoctor creates a new Doctor account with status Pending.
// No token is issued; the account cannot authenticate until an admin
// approves it.
//
// Returns the persisted user, or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrEmailAlreadyExists / store.ErrLicenseAlreadyExists (wrapped)
//     on a uniqueness conflict.
func (a *authService) RegisterDoctor(ctx context.Context, req models.RegisterDoctorRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" ||
		req.DoctorLicenseNumber == "" || req.MedicalInstitution == "" || req.Specialization == "" {
		log.Error().Str("email", req.Email).Msg("invalid doctor registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	doctor := models.User{
		Email:                       req.Email,
		PasswordHash:                passwordHash,
		FirstName:                   req.FirstName,
		LastName:                    req.LastName,
		PhoneNumber:                 req.PhoneNumber,
		Role:                        models.RoleDoctor,
		IsActive:                    true,
		CreatedAt:                   time.Now(),
		DoctorLicenseNumber:         req.DoctorLicenseNumber,
		MedicalInstitution:          req.MedicalInstitution,
		Specialization:              req.Specialization,
		DoctorVerificationDocuments: req.VerificationDocuments,
		DoctorStatus:                models.DoctorPending,
	}

	registeredDoctor, err := a.userRepository.CreateUser(ctx, doctor)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("doctor creation ended with error")
		return models.User{}, fmt.Errorf("doctor creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredDoctor.UserID).Str("email", registeredDoctor.Email).Msg("new doctor registration pending approval")

	return registeredDoctor, nil
}

// Login authenticates an existing user and issues a token.
//
// Failure modes, in check order:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password does not
//     match (callers cannot tell which).
//   - ErrAccountDeactivated if the account is inactive.
//   - ErrDoctorNotApproved if the account is a Doctor not yet Approved.
//
// On success, the user's LastLoginAt is updated before the token is issued.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Info().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Info().Int64("id", foundUser.UserID).Msg("login attempt for deactivated account")
		return models.User{}, models.Token{}, ErrAccountDeactivated
	}

	if foundUser.Role == models.RoleDoctor && foundUser.DoctorStatus != models.DoctorApproved {
		log.Info().Int64("id", foundUser.UserID).Str("doctorStatus", string(foundUser.DoctorStatus)).Msg("login attempt for unapproved doctor")
		return models.User{}, models.Token{}, ErrDoctorNotApproved
	}

	now := time.Now()
	foundUser.LastLoginAt = &now
	foundUser, err = a.userRepository.UpdateUser(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("updating last login timestamp failed")
		return models.User{}, models.Token{}, fmt.Errorf("updating last login timestamp failed: %w", err)
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("creation of token failed")
		return models.User{}, models.Token{}, err
	}

	log.Info().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("user logged in successfully")

	return foundUser, token, nil
}

// CurrentUser fetches the account behind a validated token's subject id.
//
// Returns store.ErrNoUserWasFound (wrapped) if the account no longer exists.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("current user lookup failed")
		return models.User{}, fmt.Errorf("current user lookup failed: %w", err)
	}

	return user, nil
}

// ListPendingDoctors returns every Doctor account with status Pending.
func (a *authService) ListPendingDoctors(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	pending, err := a.userRepository.ListPendingDoctors(ctx)
	if err != nil {
		log.Err(err).Msg("listing pending doctors failed")
		return nil, fmt.Errorf("listing pending doctors failed: %w", err)
	}

	return pending, nil
}

// UpdateDoctorStatus sets a doctor's approval state on behalf of an admin.
//
// Any status can be set from any other status; no transition graph is
// enforced beyond "the target must exist and be a Doctor". When the new
// status is Approved, DoctorApprovedAt and ApprovedByAdminID are stamped
// together with the acting admin's id.
//
// Returns:
//   - ErrInvalidDoctorStatus if the requested status is not a known state.
//   - ErrDoctorNotFound if the target does not exist or is not a Doctor.
func (a *authService) UpdateDoctorStatus(ctx context.Context, adminID int64, req models.DoctorApprovalRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if !req.Status.Valid() {
		log.Error().Str("status", string(req.Status)).Msg("invalid doctor status provided")
		return models.User{}, ErrInvalidDoctorStatus
	}

	doctor, err := a.userRepository.FindUserByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrDoctorNotFound
		}
		log.Err(err).Int64("doctorId", req.DoctorID).Msg("doctor lookup failed")
		return models.User{}, fmt.Errorf("doctor lookup failed: %w", err)
	}

	if doctor.Role != models.RoleDoctor {
		log.Info().Int64("doctorId", req.DoctorID).Str("role", string(doctor.Role)).Msg("approval target is not a doctor")
		return models.User{}, ErrDoctorNotFound
	}

	doctor.DoctorStatus = req.Status
	if req.Status == models.DoctorApproved {
		now := time.Now()
		doctor.DoctorApprovedAt = &now
		doctor.ApprovedByAdminID = &adminID
	}

	updatedDoctor, err := a.userRepository.UpdateUser(ctx, doctor)
	if err != nil {
		log.Err(err).Int64("doctorId", req.DoctorID).Msg("doctor status update failed")
		return models.User{}, fmt.Errorf("doctor status update failed: %w", err)
	}

	log.Info().
		Int64("doctorId", updatedDoctor.UserID).
		Str("status", string(req.Status)).
		Int64("adminId", adminID).
		Msg("doctor status updated")

	return updatedDoctor, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured sign key, carries the configured
// issuer and audience, and expires after the configured duration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer, the audience, and the expiration. Any validation failure
// (expired, wrong issuer/audience, malformed, wrong algorithm) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureAdmin seeds the default administrator account once at process start.
//
// The step is idempotent: if an account with the configured admin email
// already exists (whatever its role), nothing is created.
func (a *authService) EnsureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, a.adminEmail)
	if err == nil {
		log.Debug().Str("email", a.adminEmail).Msg("admin account already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", a.adminEmail).Msg("admin lookup failed")
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(a.adminPassword)
	if err != nil {
		return fmt.Errorf("admin password hashing failed: %w", err)
	}

	admin := models.User{
		Email:        a.adminEmail,
		PasswordHash: passwordHash,
		FirstName:    "System",
		LastName:     "Administrator",
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	created, err := a.userRepository.CreateUser(ctx, admin)
	if err != nil {
		// A concurrent process may have seeded the account in between.
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return nil
		}
		log.Err(err).Str("email", a.adminEmail).Msg("admin seed failed")
		return fmt.Errorf("admin seed failed: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("email", created.Email).Msg("default admin account created")

	return nil
}
