package models

// LoginRequest carries the credentials submitted to POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUserRequest carries the self-service registration fields for a
// regular (patient) account.
type RegisterUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// RegisterDoctorRequest carries a doctor registration: the base user fields
// plus the doctor-specific ones. Kept as one flat struct rather than a type
// hierarchy; the doctor fields are simply additional members.
type RegisterDoctorRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	DoctorLicenseNumber   string `json:"doctorLicenseNumber"`
	MedicalInstitution    string `json:"medicalInstitution"`
	Specialization        string `json:"specialization"`
	VerificationDocuments string `json:"verificationDocuments,omitempty"`
}

// DoctorApprovalRequest is the admin action that moves a doctor account to a
// new approval state. Notes are accepted but not persisted in current scope.
type DoctorApprovalRequest struct {
	DoctorID int64        `json:"doctorId"`
	Status   DoctorStatus `json:"status"`
	Notes    string       `json:"notes,omitempty"`
}

// CreateProfileRequest carries the medical fields for a new emergency
// profile. The owner is taken from the caller's token, never from the body.
type CreateProfileRequest struct {
	FullName          string `json:"fullName"`
	BloodType         string `json:"bloodType"`
	Allergies         string `json:"allergies"`
	MedicalConditions string `json:"medicalConditions"`
	Medications       string `json:"medications,omitempty"`

	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`

	PhysicianName  string `json:"physicianName,omitempty"`
	PhysicianPhone string `json:"physicianPhone,omitempty"`
}
