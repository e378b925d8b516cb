package models

import "time"

// AuthResponse is returned by login and user registration: the signed token
// plus the public-safe projection of the authenticated account.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DoctorRegistrationResponse confirms a doctor registration that is now
// awaiting admin review. No token is issued at this point.
type DoctorRegistrationResponse struct {
	Message  string `json:"message"`
	DoctorID int64  `json:"doctorId"`
}

// DoctorApprovalResponse is returned after an admin changes a doctor's
// approval state.
type DoctorApprovalResponse struct {
	Message string `json:"message"`
	Doctor  User   `json:"doctor"`
}

// PendingDoctor is the admin-review projection of a Doctor account with
// status Pending.
type PendingDoctor struct {
	ID                    int64     `json:"id"`
	Email                 string    `json:"email"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	DoctorLicenseNumber   string    `json:"doctorLicenseNumber"`
	MedicalInstitution    string    `json:"medicalInstitution"`
	Specialization        string    `json:"specialization"`
	CreatedAt             time.Time `json:"createdAt"`
	VerificationDocuments string    `json:"verificationDocuments,omitempty"`
}

// PendingDoctorView projects a stored Doctor user into its admin-review shape.
func PendingDoctorView(u User) PendingDoctor {
	return PendingDoctor{
		ID:                    u.UserID,
		Email:                 u.Email,
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		DoctorLicenseNumber:   u.DoctorLicenseNumber,
		MedicalInstitution:    u.MedicalInstitution,
		Specialization:        u.Specialization,
		CreatedAt:             u.CreatedAt,
		VerificationDocuments: u.DoctorVerificationDocuments,
	}
}

// DatabaseInfoResponse is the admin diagnostic view of the profile store.
type DatabaseInfoResponse struct {
	TotalProfiles int                   `json:"totalProfiles"`
	Profiles      []DatabaseInfoProfile `json:"profiles"`
}

// DatabaseInfoProfile is the thin per-profile entry inside the diagnostic view.
type DatabaseInfoProfile struct {
	ID        int64  `json:"id"`
	PublicID  string `json:"publicId"`
	FullName  string `json:"fullName"`
	BloodType string `json:"bloodType"`
}
