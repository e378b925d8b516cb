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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and mutation against the "users"
// table. Uniqueness of email and doctor license number is delegated to the
// table's unique indexes, which makes CreateUser atomic under concurrency.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique_violation (23505) on the email index → [ErrEmailAlreadyExists].
//   - unique_violation on the license index → [ErrLicenseAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertUserQuery(user).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&user.UserID, &user.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case constraintUsersLicense:
				return models.User{}, ErrLicenseAlreadyExists
			default:
				return models.User{}, ErrEmailAlreadyExists
			}
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves a user record whose email matches exactly.
//
// Returns [ErrNoUserWasFound] when the result set is empty, or a wrapped
// "unexpected DB error" for driver-level failures.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := selectUsersQuery().Where("email = ?", email).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	return r.findOne(ctx, query, args...)
}

// FindUserByID retrieves a user record by its internal identifier.
//
// Returns [ErrNoUserWasFound] when the result set is empty, or a wrapped
// "unexpected DB error" for driver-level failures.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := selectUsersQuery().Where("id = ?", id).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	return r.findOne(ctx, query, args...)
}

// ListPendingDoctors returns every Doctor account awaiting approval,
// ordered by ascending id.
func (r *userRepository) ListPendingDoctors(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsersQuery().
		Where("role = ?", string(models.RoleDoctor)).
		Where("doctor_status = ?", string(models.DoctorPending)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListPendingDoctors").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListPendingDoctors").Msg("error: scanning row")
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}

// UpdateUser persists the mutable fields of an existing record (activity
// flag, login timestamp, doctor approval fields).
//
// Returns [ErrNoUserWasFound] when no row matches the user's id.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateUserQuery(user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: executing statement")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan code.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one users row into a [models.User], converting nullable
// columns to their pointer/empty representations.
func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var role, doctorStatus string
	var lastLoginAt, doctorApprovedAt sql.NullTime
	var approvedByAdminID sql.NullInt64

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&role,
		&user.IsActive,
		&user.CreatedAt,
		&lastLoginAt,
		&user.DoctorLicenseNumber,
		&user.MedicalInstitution,
		&user.Specialization,
		&doctorStatus,
		&user.DoctorVerificationDocuments,
		&doctorApprovedAt,
		&approvedByAdminID,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.UserRole(role)
	user.DoctorStatus = models.DoctorStatus(doctorStatus)
	if lastLoginAt.Valid {
		t := lastLoginAt.Time
		user.LastLoginAt = &t
	}
	if doctorApprovedAt.Valid {
		t := doctorApprovedAt.Time
		user.DoctorApprovedAt = &t
	}
	if approvedByAdminID.Valid {
		id := approvedByAdminID.Int64
		user.ApprovedByAdminID = &id
	}

	return user, nil
}
