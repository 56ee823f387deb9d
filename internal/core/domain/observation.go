package domain

// EncryptionMode identifies the security protocol advertised by an access point.
type EncryptionMode string

const (
	EncryptionOpen EncryptionMode = "OPEN"
	EncryptionNone EncryptionMode = "NONE"
	EncryptionWEP  EncryptionMode = "WEP"
	EncryptionWPA  EncryptionMode = "WPA"
	EncryptionWPA2 EncryptionMode = "WPA2"
	EncryptionWPA3 EncryptionMode = "WPA3"
)

// IsValid checks if the mode is a recognized encryption mode.
func (e EncryptionMode) IsValid() bool {
	switch e {
	case EncryptionOpen, EncryptionNone, EncryptionWEP, EncryptionWPA, EncryptionWPA2, EncryptionWPA3:
		return true
	}
	return false
}

// IsUnprotected returns true when traffic on the network is not encrypted at all.
func (e EncryptionMode) IsUnprotected() bool {
	return e == EncryptionOpen || e == EncryptionNone
}

// Observation is one point-in-time sample of a wireless network as reported
// by a scanning client. Optional telemetry fields are pointers so an absent
// value can be distinguished from a legitimate zero reading; the scorer
// substitutes documented neutral defaults for absent fields.
type Observation struct {
	SSID       string         `json:"ssid"`
	BSSID      string         `json:"bssid"`
	Encryption EncryptionMode `json:"encryption"`
	SignalDBM  int            `json:"signal_dbm"`

	SNRdB            *float64 `json:"snr_db,omitempty"`
	CongestionPct    *float64 `json:"congestion_pct,omitempty"`
	LatencyMS        *float64 `json:"latency_ms,omitempty"`
	BroadcastDensity *float64 `json:"broadcast_density,omitempty"`

	GatewayMAC string `json:"gateway_mac,omitempty"`
	TargetURL  string `json:"target_url,omitempty"`

	// DNSVerified is tri-state: nil (not checked), true, or explicitly false.
	// Only an explicit false counts as a failed DNS integrity check.
	DNSVerified *bool `json:"dns_verified,omitempty"`
}
