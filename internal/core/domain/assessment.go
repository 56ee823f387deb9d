package domain

import "errors"

var ErrInvalidSeverity = errors.New("invalid alert severity level")

// AlertSeverity represents the criticality of a scoring alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "INFO"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// IsValid checks if the severity is a recognized level.
func (s AlertSeverity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// AlertCategory tags an alert with the scoring rule family that produced it.
type AlertCategory string

const (
	AlertPhysicalLayer  AlertCategory = "PHYSICAL_LAYER"
	AlertEvilTwin       AlertCategory = "EVIL_TWIN"
	AlertMITM           AlertCategory = "MITM"
	AlertVulnerability  AlertCategory = "VULNERABILITY"
	AlertDNSHijack      AlertCategory = "DNS_HIJACK"
	AlertVerifiedPortal AlertCategory = "VERIFIED_PORTAL"
	AlertPublicNetwork  AlertCategory = "PUBLIC_NETWORK"
)

// Alert is a single human-readable finding attached to a risk assessment.
// Messages ship in English and Marathi.
type Alert struct {
	Severity  AlertSeverity `json:"severity"`
	Category  AlertCategory `json:"category"`
	MessageEN string        `json:"message_en"`
	MessageMR string        `json:"message_local"`
}

// NetworkStatus classifies a risk score into a user-facing verdict.
type NetworkStatus string

const (
	StatusSafe    NetworkStatus = "SAFE"
	StatusWarning NetworkStatus = "WARNING"
	StatusDanger  NetworkStatus = "DANGER"
)

// StatusForScore maps a risk score onto the status partition.
// The thresholds partition [0,100] totally and without overlap:
// below 40 is DANGER, 40 through 74 is WARNING, 75 and above is SAFE.
func StatusForScore(score int) NetworkStatus {
	switch {
	case score < 40:
		return StatusDanger
	case score < 75:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// TelemetrySnapshot echoes the normalized physical readings the scorer used.
type TelemetrySnapshot struct {
	SNR        float64 `json:"snr"`
	Congestion float64 `json:"congestion"`
	Latency    float64 `json:"latency"`
	Entropy    float64 `json:"entropy"`
}

// RiskAssessment is the immutable result of scoring one observation.
type RiskAssessment struct {
	SSID      string            `json:"ssid"`
	Score     int               `json:"risk_score"`
	Status    NetworkStatus     `json:"status"`
	Alerts    []Alert           `json:"alerts"`
	Telemetry TelemetrySnapshot `json:"telemetry"`
}

// ThreatFound reports whether the assessment counts as a discovered threat
// for activity-tracking purposes (WARNING or DANGER verdicts).
func (a *RiskAssessment) ThreatFound() bool {
	return a.Status != StatusSafe
}
