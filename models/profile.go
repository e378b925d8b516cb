package models

// EmergencyProfile holds the medical information retrievable through a short
// public identifier. The PublicID is the only external lookup key; the
// internal ID and the owner reference never leave the authenticated surface.
type EmergencyProfile struct {
	// ID is the internal unique identifier, assigned by the store.
	ID int64 `json:"id"`

	// PublicID is the short random identifier printed on QR codes.
	// Unique across all profiles and immutable once assigned.
	PublicID string `json:"publicId"`

	FullName          string `json:"fullName"`
	BloodType         string `json:"bloodType"`
	Allergies         string `json:"allergies"`
	MedicalConditions string `json:"medicalConditions"`
	Medications       string `json:"medications,omitempty"`

	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`

	PhysicianName  string `json:"physicianName,omitempty"`
	PhysicianPhone string `json:"physicianPhone,omitempty"`

	// CreatedBy references the owning user's ID. Nil means the profile has
	// no recorded owner (legacy anonymous records).
	CreatedBy *int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the EmergencyProfile model.
func (p EmergencyProfile) TableName() string {
	return "emergency_profiles"
}

// PublicView is the unauthenticated emergency-access projection: only the
// medically relevant subset, without the internal ID or owner reference.
func (p EmergencyProfile) PublicView() PublicProfile {
	return PublicProfile{
		FullName:              p.FullName,
		BloodType:             p.BloodType,
		Allergies:             p.Allergies,
		MedicalConditions:     p.MedicalConditions,
		Medications:           p.Medications,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		PhysicianName:         p.PhysicianName,
		PhysicianPhone:        p.PhysicianPhone,
	}
}

// PublicProfile is what the open emergency lookup endpoint returns.
type PublicProfile struct {
	FullName              string `json:"fullName"`
	BloodType             string `json:"bloodType"`
	Allergies             string `json:"allergies"`
	MedicalConditions     string `json:"medicalConditions"`
	Medications           string `json:"medications,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	PhysicianName         string `json:"physicianName,omitempty"`
	PhysicianPhone        string `json:"physicianPhone,omitempty"`
}
