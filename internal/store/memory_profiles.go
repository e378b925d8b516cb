package store

import (
	"context"
	"sync"

	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/models"
)

// memoryProfileRepository is the in-memory implementation of
// [ProfileRepository]. A single mutex guards both maps, so the public-id
// existence check and the insert happen atomically.
type memoryProfileRepository struct {
	mu         sync.Mutex
	nextID     int64
	byID       map[int64]models.EmergencyProfile
	byPublicID map[string]int64

	logger *logger.Logger
}

// NewMemoryProfileRepository constructs an empty in-memory [ProfileRepository].
func NewMemoryProfileRepository(logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating in-memory emergency profile repository")
	return &memoryProfileRepository{
		nextID:     1,
		byID:       make(map[int64]models.EmergencyProfile),
		byPublicID: make(map[string]int64),
		logger:     logger,
	}
}

// CreateProfile stores a new profile and returns it with the assigned ID.
// A duplicate public id yields [ErrPublicIDAlreadyExists]; the existing
// record is left untouched.
func (r *memoryProfileRepository) CreateProfile(ctx context.Context, profile models.EmergencyProfile) (models.EmergencyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPublicID[profile.PublicID]; exists {
		return models.EmergencyProfile{}, ErrPublicIDAlreadyExists
	}

	profile.ID = r.nextID
	r.nextID++

	r.byID[profile.ID] = profile
	r.byPublicID[profile.PublicID] = profile.ID

	return profile, nil
}

// ListProfiles returns every stored profile ordered by ascending ID.
func (r *memoryProfileRepository) ListProfiles(ctx context.Context) ([]models.EmergencyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles := make([]models.EmergencyProfile, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if profile, ok := r.byID[id]; ok {
			profiles = append(profiles, profile)
		}
	}

	return profiles, nil
}

// ListProfilesByOwner returns the profiles created by the given user,
// ordered by ascending ID.
func (r *memoryProfileRepository) ListProfilesByOwner(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles := make([]models.EmergencyProfile, 0)
	for id := int64(1); id < r.nextID; id++ {
		profile, ok := r.byID[id]
		if !ok {
			continue
		}
		if profile.CreatedBy != nil && *profile.CreatedBy == ownerID {
			profiles = append(profiles, profile)
		}
	}

	return profiles, nil
}

// FindProfileByPublicID retrieves the profile with the given public id.
// Returns [ErrProfileNotFound] when no such record exists.
func (r *memoryProfileRepository) FindProfileByPublicID(ctx context.Context, publicID string) (models.EmergencyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byPublicID[publicID]
	if !ok {
		return models.EmergencyProfile{}, ErrProfileNotFound
	}

	return r.byID[id], nil
}
