package domain

import (
	"regexp"
)

// Validation Helpers
//
// Malformed input is a contract violation rejected at the transport
// boundary; the core services assume structurally valid data.

var macRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)

// IsValidMAC checks if the string is a valid MAC address
func IsValidMAC(mac string) bool {
	return macRegex.MatchString(mac)
}

// ValidateObservation performs the boundary checks a handler must run
// before passing an observation to the scorer. Optional fields are not
// checked; absence is legal and handled by the scorer's defaults.
func ValidateObservation(o Observation) error {
	if o.Encryption != "" && !o.Encryption.IsValid() {
		return ErrInvalidEncryption
	}
	if o.BSSID != "" && !IsValidMAC(o.BSSID) {
		return ErrInvalidBSSID
	}
	if o.GatewayMAC != "" && !IsValidMAC(o.GatewayMAC) {
		return ErrInvalidGatewayMAC
	}
	return nil
}
