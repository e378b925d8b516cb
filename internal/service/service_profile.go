package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/store"
	"github.com/medlink-app/medlink-api/internal/utils"
	"github.com/medlink-app/medlink-api/models"
)

// publicIDAttempts bounds how many times CreateProfile retries with a fresh
// public id after a uniqueness collision.
const publicIDAttempts = 5

type profileService struct {
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

// NewProfileService constructs a ProfileService backed by the given repository.
func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// CreateProfile stores a new emergency profile and assigns it a short public id.
//
// The public id is generated server-side. On the unlikely event of a
// collision the generation is retried; after publicIDAttempts collisions in
// a row ErrPublicIDExhausted is returned.
func (p *profileService) CreateProfile(ctx context.Context, req models.CreateProfileRequest, ownerID int64) (models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	if req.FullName == "" || req.BloodType == "" || req.Allergies == "" || req.MedicalConditions == "" ||
		req.EmergencyContactName == "" || req.EmergencyContactPhone == "" {
		log.Error().Msg("invalid profile data provided")
		return models.EmergencyProfile{}, ErrInvalidDataProvided
	}

	profile := models.EmergencyProfile{
		FullName:              req.FullName,
		BloodType:             req.BloodType,
		Allergies:             req.Allergies,
		MedicalConditions:     req.MedicalConditions,
		Medications:           req.Medications,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		PhysicianName:         req.PhysicianName,
		PhysicianPhone:        req.PhysicianPhone,
		CreatedBy:             &ownerID,
	}

	for attempt := 0; attempt < publicIDAttempts; attempt++ {
		profile.PublicID = utils.NewPublicID()

		created, err := p.profileRepository.CreateProfile(ctx, profile)
		if err == nil {
			log.Info().Int64("id", created.ID).Str("publicId", created.PublicID).Msg("emergency profile created")
			return created, nil
		}
		if !errors.Is(err, store.ErrPublicIDAlreadyExists) {
			log.Err(err).Msg("profile creation ended with error")
			return models.EmergencyProfile{}, fmt.Errorf("profile creation ended with error: %w", err)
		}

		log.Warn().Str("publicId", profile.PublicID).Msg("public id collision, regenerating")
	}

	return models.EmergencyProfile{}, ErrPublicIDExhausted
}

// ListProfiles returns every stored profile, including owner references.
// Exposed to Doctor and Admin roles only.
func (p *profileService) ListProfiles(ctx context.Context) ([]models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	profiles, err := p.profileRepository.ListProfiles(ctx)
	if err != nil {
		log.Err(err).Msg("listing profiles failed")
		return nil, fmt.Errorf("listing profiles failed: %w", err)
	}

	return profiles, nil
}

// ListProfilesByOwner returns the profiles created by a specific user.
func (p *profileService) ListProfilesByOwner(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	profiles, err := p.profileRepository.ListProfilesByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("ownerId", ownerID).Msg("listing profiles by owner failed")
		return nil, fmt.Errorf("listing profiles by owner failed: %w", err)
	}

	return profiles, nil
}

// FindProfileByPublicID resolves a profile by its 8-character public id.
//
// Returns store.ErrProfileNotFound (wrapped) when no profile carries the id.
func (p *profileService) FindProfileByPublicID(ctx context.Context, publicID string) (models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	if len(publicID) != utils.PublicIDLength {
		return models.EmergencyProfile{}, fmt.Errorf("%w: malformed public id", store.ErrProfileNotFound)
	}

	profile, err := p.profileRepository.FindProfileByPublicID(ctx, publicID)
	if err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			log.Err(err).Str("publicId", publicID).Msg("profile lookup failed")
		}
		return models.EmergencyProfile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

// DatabaseInfo summarises the profile table for the admin diagnostics endpoint.
func (p *profileService) DatabaseInfo(ctx context.Context) (models.DatabaseInfoResponse, error) {
	log := logger.FromContext(ctx)

	profiles, err := p.profileRepository.ListProfiles(ctx)
	if err != nil {
		log.Err(err).Msg("database info query failed")
		return models.DatabaseInfoResponse{}, fmt.Errorf("database info query failed: %w", err)
	}

	info := models.DatabaseInfoResponse{
		TotalProfiles: len(profiles),
		Profiles:      make([]models.DatabaseInfoProfile, 0, len(profiles)),
	}
	for _, profile := range profiles {
		info.Profiles = append(info.Profiles, models.DatabaseInfoProfile{
			ID:        profile.ID,
			PublicID:  profile.PublicID,
			FullName:  profile.FullName,
			BloodType: profile.BloodType,
		})
	}

	return info, nil
}
