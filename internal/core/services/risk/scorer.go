package risk

import (
	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
)

// startingScore is the trust every network begins with; rules only subtract,
// so no upper clamp is needed.
const startingScore = 100

// Scorer applies the ordered rule cascade to one observation. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	rules []rule
}

var _ ports.RiskScorer = (*Scorer)(nil)

// NewScorer creates a scorer with the default cascade.
func NewScorer() *Scorer {
	return &Scorer{rules: defaultRules()}
}

// Assess scores one observation. Total function: absent fields fall back to
// benign defaults and no input is ever rejected.
func (sc *Scorer) Assess(obs domain.Observation) domain.RiskAssessment {
	s := normalize(obs)

	score := startingScore
	alerts := make([]domain.Alert, 0, 2)
	for _, r := range sc.rules {
		deduction, hits := r.Evaluate(s)
		score -= deduction
		alerts = append(alerts, hits...)
	}
	if score < 0 {
		score = 0
	}

	return domain.RiskAssessment{
		SSID:   s.ssid,
		Score:  score,
		Status: domain.StatusForScore(score),
		Alerts: alerts,
		Telemetry: domain.TelemetrySnapshot{
			SNR:        s.snr,
			Congestion: s.congestion,
			Latency:    s.latency,
			Entropy:    1.0 - s.density,
		},
	}
}

// normalize fills absent observation fields with their documented defaults.
func normalize(obs domain.Observation) sample {
	s := sample{
		ssid:        obs.SSID,
		bssid:       obs.BSSID,
		encryption:  obs.Encryption,
		snr:         defaultSNR,
		congestion:  defaultCongestion,
		latency:     defaultLatency,
		gatewayMAC:  obs.GatewayMAC,
		density:     defaultBroadcastDensity,
		targetURL:   obs.TargetURL,
		dnsVerified: obs.DNSVerified,
	}

	if s.ssid == "" {
		s.ssid = defaultSSID
	}
	if s.bssid == "" {
		s.bssid = defaultBSSID
	}
	if !s.encryption.IsValid() {
		// Unknown encryption is treated as WPA2-equivalent, not as open.
		s.encryption = domain.EncryptionWPA2
	}
	if s.gatewayMAC == "" {
		s.gatewayMAC = defaultGatewayMAC
	}
	if obs.SNRdB != nil {
		s.snr = *obs.SNRdB
	}
	if obs.CongestionPct != nil {
		s.congestion = *obs.CongestionPct
	}
	if obs.LatencyMS != nil {
		s.latency = *obs.LatencyMS
	}
	if obs.BroadcastDensity != nil {
		s.density = *obs.BroadcastDensity
	}
	return s
}
