package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/medlink-app/medlink-api/models"
)

// psql is the statement builder used by all PostgreSQL repositories.
// PostgreSQL uses $1-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Names of the unique constraints/indexes backing the store's atomic
// check-and-insert guarantees. Must match the migration DDL.
const (
	constraintUsersEmail     = "users_email_key"
	constraintUsersLicense   = "users_doctor_license_number_key"
	constraintProfilesPublic = "emergency_profiles_public_id_key"
)

// userColumns lists every persisted column of the users table in scan order.
var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"first_name",
	"last_name",
	"phone_number",
	"role",
	"is_active",
	"created_at",
	"last_login_at",
	"doctor_license_number",
	"medical_institution",
	"specialization",
	"doctor_status",
	"doctor_verification_documents",
	"doctor_approved_at",
	"approved_by_admin_id",
}

// profileColumns lists every persisted column of the emergency_profiles
// table in scan order.
var profileColumns = []string{
	"id",
	"public_id",
	"full_name",
	"blood_type",
	"allergies",
	"medical_conditions",
	"medications",
	"emergency_contact_name",
	"emergency_contact_phone",
	"physician_name",
	"physician_phone",
	"created_by",
}

func insertUserQuery(user models.User) sq.InsertBuilder {
	return psql.Insert(user.TableName()).
		Columns(
			"email",
			"password_hash",
			"first_name",
			"last_name",
			"phone_number",
			"role",
			"is_active",
			"doctor_license_number",
			"medical_institution",
			"specialization",
			"doctor_status",
			"doctor_verification_documents",
		).
		Values(
			user.Email,
			user.PasswordHash,
			user.FirstName,
			user.LastName,
			user.PhoneNumber,
			string(user.Role),
			user.IsActive,
			user.DoctorLicenseNumber,
			user.MedicalInstitution,
			user.Specialization,
			string(user.DoctorStatus),
			user.DoctorVerificationDocuments,
		).
		Suffix("RETURNING id, created_at")
}

func selectUsersQuery() sq.SelectBuilder {
	return psql.Select(userColumns...).From(models.User{}.TableName())
}

func updateUserQuery(user models.User) sq.UpdateBuilder {
	return psql.Update(user.TableName()).
		Set("email", user.Email).
		Set("phone_number", user.PhoneNumber).
		Set("is_active", user.IsActive).
		Set("last_login_at", user.LastLoginAt).
		Set("doctor_status", string(user.DoctorStatus)).
		Set("doctor_approved_at", user.DoctorApprovedAt).
		Set("approved_by_admin_id", user.ApprovedByAdminID).
		Where(sq.Eq{"id": user.UserID})
}

func insertProfileQuery(profile models.EmergencyProfile) sq.InsertBuilder {
	return psql.Insert(profile.TableName()).
		Columns(
			"public_id",
			"full_name",
			"blood_type",
			"allergies",
			"medical_conditions",
			"medications",
			"emergency_contact_name",
			"emergency_contact_phone",
			"physician_name",
			"physician_phone",
			"created_by",
		).
		Values(
			profile.PublicID,
			profile.FullName,
			profile.BloodType,
			profile.Allergies,
			profile.MedicalConditions,
			profile.Medications,
			profile.EmergencyContactName,
			profile.EmergencyContactPhone,
			profile.PhysicianName,
			profile.PhysicianPhone,
			profile.CreatedBy,
		).
		Suffix("RETURNING id")
}

func selectProfilesQuery() sq.SelectBuilder {
	return psql.Select(profileColumns...).From(models.EmergencyProfile{}.TableName())
}
