package risk

import (
	"strings"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// sample is an observation with defaults applied, ready for rule evaluation.
type sample struct {
	ssid        string
	bssid       string
	encryption  domain.EncryptionMode
	snr         float64
	congestion  float64
	latency     float64
	gatewayMAC  string
	density     float64
	targetURL   string
	dnsVerified *bool
}

// rule is one step of the scoring cascade. Rules never see each other's
// results; the scorer evaluates every rule in declared order and sums the
// deductions. Mutual exclusion (the encryption tier) lives inside a single
// rule, never between rules.
type rule interface {
	Name() string
	Evaluate(s sample) (deduction int, alerts []domain.Alert)
}

// defaultRules returns the cascade in its fixed, audited order.
func defaultRules() []rule {
	return []rule{
		physicalLayerRule{},
		evilTwinRule{},
		mitmRule{},
		encryptionRule{},
		dnsIntegrityRule{},
		ssidHeuristicRule{},
	}
}

// physicalLayerRule flags signal interference: low SNR combined with a
// congested channel points at jamming or a hostile RF environment.
type physicalLayerRule struct{}

func (physicalLayerRule) Name() string { return "physical_layer" }

func (physicalLayerRule) Evaluate(s sample) (int, []domain.Alert) {
	if s.snr < 15 && s.congestion > 70 {
		return 30, []domain.Alert{catalogAlert(domain.AlertPhysicalLayer)}
	}
	return 0, nil
}

// evilTwinRule matches the spoofed vendor prefix sentinel combined with
// suspicious latency. Placeholder policy, not real OUI detection.
type evilTwinRule struct{}

func (evilTwinRule) Name() string { return "evil_twin" }

func (evilTwinRule) Evaluate(s sample) (int, []domain.Alert) {
	if strings.HasPrefix(s.bssid, spoofedOUIPrefix) && s.latency > 100 {
		return 40, []domain.Alert{catalogAlert(domain.AlertEvilTwin)}
	}
	return 0, nil
}

// mitmRule matches the known-attacker gateway sentinel.
type mitmRule struct{}

func (mitmRule) Name() string { return "mitm" }

func (mitmRule) Evaluate(s sample) (int, []domain.Alert) {
	if s.gatewayMAC == attackerGatewayMAC {
		return 50, []domain.Alert{catalogAlert(domain.AlertMITM)}
	}
	return 0, nil
}

// encryptionRule is the mutually exclusive tier: an open network takes the
// full deduction, WEP a smaller one, and only otherwise does high broadcast
// density count against the network.
type encryptionRule struct{}

func (encryptionRule) Name() string { return "encryption" }

func (encryptionRule) Evaluate(s sample) (int, []domain.Alert) {
	switch {
	case s.encryption.IsUnprotected():
		return 40, []domain.Alert{catalogAlert(domain.AlertVulnerability)}
	case s.encryption == domain.EncryptionWEP:
		return 25, []domain.Alert{wepAlert}
	case s.density > 0.4:
		return 15, []domain.Alert{broadcastAlert}
	}
	return 0, nil
}

// dnsIntegrityRule applies only when the target URL is on the government
// allow-list. An explicitly failed DNS verification is a hijack; anything
// else on the list earns the informational verified-portal stamp.
type dnsIntegrityRule struct{}

func (dnsIntegrityRule) Name() string { return "dns_integrity" }

func (dnsIntegrityRule) Evaluate(s sample) (int, []domain.Alert) {
	if !onGovAllowList(s.targetURL) {
		return 0, nil
	}
	if s.dnsVerified != nil && !*s.dnsVerified {
		return 60, []domain.Alert{catalogAlert(domain.AlertDNSHijack)}
	}
	return 0, []domain.Alert{catalogAlert(domain.AlertVerifiedPortal)}
}

func onGovAllowList(url string) bool {
	if url == "" {
		return false
	}
	for _, site := range govAllowList {
		if strings.Contains(url, site) {
			return true
		}
	}
	return false
}

// ssidHeuristicRule flags networks that advertise public or guest access.
// Stacks with the encryption tier.
type ssidHeuristicRule struct{}

func (ssidHeuristicRule) Name() string { return "ssid_heuristic" }

func (ssidHeuristicRule) Evaluate(s sample) (int, []domain.Alert) {
	for _, marker := range guestMarkers {
		if strings.Contains(s.ssid, marker) {
			return 10, []domain.Alert{catalogAlert(domain.AlertPublicNetwork)}
		}
	}
	return 0, nil
}
