package utils

import (
	"testing"
	"time"

	"github.com/medlink-app/medlink-api/models"
)

func testUser() models.User {
	return models.User{
		UserID:    123,
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      models.RoleUser,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	audience := "test-audience"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, audience, testUser(), duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", token.UserID)
	}

	// Verify claims
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if token.Claims.Email != "alice@example.com" {
		t.Errorf("expected email claim, got %s", token.Claims.Email)
	}
	if token.Claims.Name != "Alice Smith" {
		t.Errorf("expected name 'Alice Smith', got %s", token.Claims.Name)
	}
	if token.Claims.Role != models.RoleUser {
		t.Errorf("expected role User, got %s", token.Claims.Role)
	}
	if token.Claims.DoctorStatus != "" {
		t.Errorf("expected no doctor status for regular user, got %s", token.Claims.DoctorStatus)
	}
}

func TestGenerateJWTToken_DoctorClaims(t *testing.T) {
	doctor := models.User{
		UserID:              7,
		Email:               "bob@example.com",
		FirstName:           "Bob",
		LastName:            "Jones",
		Role:                models.RoleDoctor,
		DoctorStatus:        models.DoctorApproved,
		DoctorLicenseNumber: "LIC-1",
		Specialization:      "Cardiology",
	}

	token, err := GenerateJWTToken("iss", "aud", doctor, time.Hour, "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if token.Claims.DoctorStatus != models.DoctorApproved {
		t.Errorf("expected doctor status Approved, got %s", token.Claims.DoctorStatus)
	}
	if token.Claims.LicenseNumber != "LIC-1" {
		t.Errorf("expected license claim LIC-1, got %s", token.Claims.LicenseNumber)
	}
	if token.Claims.Specialization != "Cardiology" {
		t.Errorf("expected specialization claim, got %s", token.Claims.Specialization)
	}
}

func TestGenerateJWTToken_DoctorStatusDefaultsToPending(t *testing.T) {
	doctor := models.User{
		UserID:    8,
		Email:     "carol@example.com",
		FirstName: "Carol",
		LastName:  "White",
		Role:      models.RoleDoctor,
	}

	token, err := GenerateJWTToken("iss", "aud", doctor, time.Hour, "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.Claims.DoctorStatus != models.DoctorPending {
		t.Errorf("expected status to default to Pending, got %s", token.Claims.DoctorStatus)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "aud", time.Hour, "key"},
		{"empty audience", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "aud", 0, "key"},
		{"empty key", "iss", "aud", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.audience, testUser(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	audience := "test-audience"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, audience, testUser(), time.Minute*5, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer, audience)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != 123 {
		t.Errorf("expected userID 123, got %d", parsedToken.UserID)
	}
	if parsedToken.Claims.Email != "alice@example.com" {
		t.Errorf("expected parsed email claim, got %s", parsedToken.Claims.Email)
	}
	if parsedToken.Claims.Role != models.RoleUser {
		t.Errorf("expected parsed role User, got %s", parsedToken.Claims.Role)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken("iss", "aud", testUser(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, "iss", "aud")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	key := "key"
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken("iss", "aud", testUser(), -time.Second, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "iss", "aud")
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", "aud", testUser(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer", "aud")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongAudience(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("iss", "real-audience", testUser(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "iss", "fake-audience")
	if err == nil {
		t.Error("expected error for audience mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", "aud")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer", "", true},
		{"empty header", "", "", true},
		{"empty token part", "Bearer ", "", true},
		{"wrong scheme", "Basic abc.def.ghi", "", true},
		{"lowercase scheme", "bearer abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
