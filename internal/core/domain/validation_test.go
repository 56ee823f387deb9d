package domain

import (
	"errors"
	"testing"
)

func TestIsValidMAC(t *testing.T) {
	valid := []string{
		"00:11:22:33:44:55",
		"AA:BB:CC:DD:EE:FF",
		"aa-bb-cc-dd-ee-ff",
	}
	for _, mac := range valid {
		if !IsValidMAC(mac) {
			t.Errorf("IsValidMAC(%q) = false, want true", mac)
		}
	}

	invalid := []string{
		"",
		"00:11:22:33:44",
		"00:11:22:33:44:GG",
		"001122334455",
		"00:11:22:33:44:55:66",
	}
	for _, mac := range invalid {
		if IsValidMAC(mac) {
			t.Errorf("IsValidMAC(%q) = true, want false", mac)
		}
	}
}

func TestValidateObservation(t *testing.T) {
	tests := []struct {
		name    string
		obs     Observation
		wantErr error
	}{
		{
			name: "empty observation is legal",
			obs:  Observation{},
		},
		{
			name: "fully specified observation",
			obs: Observation{
				SSID:       "HomeNet",
				BSSID:      "00:11:22:33:44:55",
				Encryption: EncryptionWPA2,
				GatewayMAC: "AA:BB:CC:DD:EE:FF",
			},
		},
		{
			name:    "bad encryption",
			obs:     Observation{Encryption: "ROT13"},
			wantErr: ErrInvalidEncryption,
		},
		{
			name:    "bad bssid",
			obs:     Observation{BSSID: "not-a-mac"},
			wantErr: ErrInvalidBSSID,
		},
		{
			name:    "bad gateway mac",
			obs:     Observation{GatewayMAC: "zz:zz"},
			wantErr: ErrInvalidGatewayMAC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObservation(tt.obs)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateObservation() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score int
		want  NetworkStatus
	}{
		{0, StatusDanger},
		{39, StatusDanger},
		{40, StatusWarning},
		{74, StatusWarning},
		{75, StatusSafe},
		{100, StatusSafe},
	}

	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestEncryptionMode(t *testing.T) {
	if !EncryptionOpen.IsUnprotected() || !EncryptionNone.IsUnprotected() {
		t.Error("OPEN and NONE must count as unprotected")
	}
	if EncryptionWEP.IsUnprotected() {
		t.Error("WEP is weak but not unprotected")
	}
	if EncryptionMode("WPA9").IsValid() {
		t.Error("unknown mode must be invalid")
	}
}

func TestNewUser(t *testing.T) {
	user, err := NewUser("id-1", "asha", RoleMember)
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}
	if user.Level != 1 || user.Points != 0 {
		t.Errorf("new user must start at level 1 with 0 points, got %+v", user)
	}

	if _, err := NewUser("id-2", "", RoleMember); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("expected ErrEmptyUsername, got %v", err)
	}
	if _, err := NewUser("id-3", "x", "superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestThreatFound(t *testing.T) {
	safe := RiskAssessment{Status: StatusSafe}
	if safe.ThreatFound() {
		t.Error("SAFE must not count as a threat")
	}
	for _, status := range []NetworkStatus{StatusWarning, StatusDanger} {
		a := RiskAssessment{Status: status}
		if !a.ThreatFound() {
			t.Errorf("%s must count as a threat", status)
		}
	}
}
