package models

import "time"

// UserRole labels the capability level of an account.
type UserRole string

// Roles an account can hold. Every account has exactly one role.
const (
	RoleUser   UserRole = "User"
	RoleDoctor UserRole = "Doctor"
	RoleAdmin  UserRole = "Admin"
)

// DoctorStatus is the approval lifecycle state of a Doctor account.
// Only Approved doctors are allowed to authenticate.
type DoctorStatus string

// Doctor approval states.
const (
	DoctorPending   DoctorStatus = "Pending"
	DoctorApproved  DoctorStatus = "Approved"
	DoctorRejected  DoctorStatus = "Rejected"
	DoctorSuspended DoctorStatus = "Suspended"
)

// Valid reports whether s is one of the known doctor approval states.
func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorPending, DoctorApproved, DoctorRejected, DoctorSuspended:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the store at creation; monotonically increasing.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Uniqueness is byte-exact
	// (case-sensitive) and enforced at the persistence layer.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It MUST never leave the store/service boundary in responses.
	PasswordHash string `json:"-"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// Role is the account's capability level. Defaults to RoleUser.
	Role UserRole `json:"role"`

	// IsActive gates authentication: deactivated accounts cannot log in.
	IsActive bool `json:"isActive"`

	// CreatedAt is set once at creation and never mutated afterwards.
	CreatedAt time.Time `json:"createdAt"`

	// LastLoginAt is updated on every successful login.
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	// Doctor-specific fields. Populated only when Role == RoleDoctor;
	// DoctorStatus is empty for all other roles.
	DoctorLicenseNumber string       `json:"doctorLicenseNumber,omitempty"`
	MedicalInstitution  string       `json:"medicalInstitution,omitempty"`
	Specialization      string       `json:"specialization,omitempty"`
	DoctorStatus        DoctorStatus `json:"doctorStatus,omitempty"`

	// DoctorVerificationDocuments is an opaque reference to uploaded
	// verification material (e.g. a JSON blob of document paths).
	DoctorVerificationDocuments string `json:"doctorVerificationDocuments,omitempty"`

	// DoctorApprovedAt and ApprovedByAdminID are stamped together, only
	// when DoctorStatus transitions to DoctorApproved.
	DoctorApprovedAt  *time.Time `json:"doctorApprovedAt,omitempty"`
	ApprovedByAdminID *int64     `json:"approvedByAdminId,omitempty"`
}

// DisplayName returns the user's full name as embedded in token claims.
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
