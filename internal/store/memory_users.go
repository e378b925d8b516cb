// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedLink Authors

package store

import (
	"context"
	"sync"
	"time"

	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
//
// All records live in process-wide maps guarded by a single mutex, which
// makes the existence-check-then-insert in CreateUser atomic with respect to
// concurrent registrations. Identifiers are assigned from a monotonically
// increasing counter.
type memoryUserRepository struct {
	mu        sync.Mutex
	nextID    int64
	byID      map[int64]models.User
	byEmail   map[string]int64
	byLicense map[string]int64

	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		nextID:    1,
		byID:      make(map[int64]models.User),
		byEmail:   make(map[string]int64),
		byLicense: make(map[string]int64),
		logger:    logger,
	}
}

// CreateUser stores a new user record and returns it with the assigned
// UserID and CreatedAt.
//
// Uniqueness of email (byte-exact) and, for doctors, of the license number
// is checked under the repository lock, so concurrent duplicates resolve to
// exactly one success and one conflict error.
func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}
	if user.DoctorLicenseNumber != "" {
		if _, exists := r.byLicense[user.DoctorLicenseNumber]; exists {
			return models.User{}, ErrLicenseAlreadyExists
		}
	}

	user.UserID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	r.byID[user.UserID] = user
	r.byEmail[user.Email] = user.UserID
	if user.DoctorLicenseNumber != "" {
		r.byLicense[user.DoctorLicenseNumber] = user.UserID
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
// Returns [ErrNoUserWasFound] when no such record exists.
func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return r.byID[id], nil
}

// FindUserByID retrieves the user with the given internal identifier.
// Returns [ErrNoUserWasFound] when no such record exists.
func (r *memoryUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// ListPendingDoctors returns every Doctor account whose approval status is
// Pending, ordered by ascending UserID.
func (r *memoryUserRepository) ListPendingDoctors(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make([]models.User, 0)
	for id := int64(1); id < r.nextID; id++ {
		user, ok := r.byID[id]
		if !ok {
			continue
		}
		if user.Role == models.RoleDoctor && user.DoctorStatus == models.DoctorPending {
			pending = append(pending, user)
		}
	}

	return pending, nil
}

// UpdateUser persists an in-place mutation of an existing record (login
// timestamp, doctor approval fields). The email and license indexes are
// re-pointed if those fields changed.
//
// Returns [ErrNoUserWasFound] when the record does not exist.
func (r *memoryUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.byID[user.UserID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	if previous.Email != user.Email {
		if _, exists := r.byEmail[user.Email]; exists {
			return models.User{}, ErrEmailAlreadyExists
		}
		delete(r.byEmail, previous.Email)
		r.byEmail[user.Email] = user.UserID
	}

	if previous.DoctorLicenseNumber != user.DoctorLicenseNumber {
		if user.DoctorLicenseNumber != "" {
			if _, exists := r.byLicense[user.DoctorLicenseNumber]; exists {
				return models.User{}, ErrLicenseAlreadyExists
			}
			r.byLicense[user.DoctorLicenseNumber] = user.UserID
		}
		delete(r.byLicense, previous.DoctorLicenseNumber)
	}

	r.byID[user.UserID] = user

	return user, nil
}
