package domain

import "errors"

// Boundary validation errors.
var (
	ErrInvalidEncryption = errors.New("invalid encryption mode")
	ErrInvalidBSSID      = errors.New("invalid bssid")
	ErrInvalidGatewayMAC = errors.New("invalid gateway mac")
)
