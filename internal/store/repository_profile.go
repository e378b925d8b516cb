package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. The unique index on public_id makes CreateProfile's
// conflict detection atomic; a colliding insert never touches the existing
// row.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating emergency profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile persists a new emergency profile and returns it with the
// server-assigned ID.
//
// Error handling:
//   - unique_violation (23505) on public_id → [ErrPublicIDAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.EmergencyProfile) (models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertProfileQuery(profile).ToSql()
	if err != nil {
		return models.EmergencyProfile{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&profile.ID); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.EmergencyProfile{}, ErrPublicIDAlreadyExists
		}

		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: inserting profile")
		return models.EmergencyProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

// ListProfiles returns every stored profile ordered by ascending id.
func (r *profileRepository) ListProfiles(ctx context.Context) ([]models.EmergencyProfile, error) {
	query, args, err := selectProfilesQuery().OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.list(ctx, query, args...)
}

// ListProfilesByOwner returns the profiles created by the given user,
// ordered by ascending id.
func (r *profileRepository) ListProfilesByOwner(ctx context.Context, ownerID int64) ([]models.EmergencyProfile, error) {
	query, args, err := selectProfilesQuery().Where("created_by = ?", ownerID).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.list(ctx, query, args...)
}

// FindProfileByPublicID retrieves the profile with the given public id.
// Returns [ErrProfileNotFound] when no row matches.
func (r *profileRepository) FindProfileByPublicID(ctx context.Context, publicID string) (models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectProfilesQuery().Where("public_id = ?", publicID).ToSql()
	if err != nil {
		return models.EmergencyProfile{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EmergencyProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.FindProfileByPublicID").Msg("error: scanning row")
		return models.EmergencyProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) list(ctx context.Context, query string, args ...any) ([]models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.list").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	profiles := make([]models.EmergencyProfile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			log.Err(err).Str("func", "*profileRepository.list").Msg("error: scanning row")
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profiles, nil
}

// scanProfile reads one emergency_profiles row into a
// [models.EmergencyProfile], converting the nullable owner column.
func scanProfile(row rowScanner) (models.EmergencyProfile, error) {
	var profile models.EmergencyProfile
	var createdBy sql.NullInt64

	err := row.Scan(
		&profile.ID,
		&profile.PublicID,
		&profile.FullName,
		&profile.BloodType,
		&profile.Allergies,
		&profile.MedicalConditions,
		&profile.Medications,
		&profile.EmergencyContactName,
		&profile.EmergencyContactPhone,
		&profile.PhysicianName,
		&profile.PhysicianPhone,
		&createdBy,
	)
	if err != nil {
		return models.EmergencyProfile{}, err
	}

	if createdBy.Valid {
		id := createdBy.Int64
		profile.CreatedBy = &id
	}

	return profile, nil
}
