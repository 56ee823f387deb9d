// Package probe simulates the DNS leak, SSL strip, and ARP spoof checks.
// The results are randomized stand-ins: no sockets are opened and no real
// detection logic runs here.
package probe

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
)

// Simulator implements ports.ProbeRunner with randomized outcomes. It keeps
// the last observed gateway MAC per bssid so the ARP check can flag changes.
type Simulator struct {
	rand         *rand.Rand
	lastGateways map[string]string
	mu           sync.Mutex
}

var _ ports.ProbeRunner = (*Simulator)(nil)

// NewSimulator creates a probe simulator seeded from the clock.
func NewSimulator() *Simulator {
	return &Simulator{
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		lastGateways: make(map[string]string),
	}
}

// Run executes one simulated probe against the observation.
func (s *Simulator) Run(ctx context.Context, kind domain.ProbeKind, obs domain.Observation) (domain.ProbeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case domain.ProbeDNSLeak:
		return s.dnsLeak(), nil
	case domain.ProbeSSLStrip:
		return s.sslStrip(), nil
	case domain.ProbeARPSpoof:
		return s.arpSpoof(obs), nil
	default:
		return domain.ProbeResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownProbe, kind)
	}
}

func (s *Simulator) dnsLeak() domain.ProbeResult {
	leaked := s.rand.Float64() > 0.8

	result := domain.ProbeResult{
		Kind:        domain.ProbeDNSLeak,
		Passed:      !leaked,
		Severity:    domain.SeverityInfo,
		MessageEN:   "DNS queries are being routed correctly",
		MessageMR:   "DNS क्वेरी योग्यरित्या रूट केल्या जात आहेत",
		ExecutionMS: 500 + s.rand.Intn(1000),
		Details:     map[string]string{"dns_servers": "8.8.8.8,8.8.4.4"},
	}
	if leaked {
		result.Severity = domain.SeverityHigh
		result.MessageEN = "DNS Leak Detected! Your queries are exposed."
		result.MessageMR = "DNS लीक आढळली! तुमच्या क्वेरी उघड आहेत."
	}
	return result
}

func (s *Simulator) sslStrip() domain.ProbeResult {
	stripped := s.rand.Float64() > 0.85

	result := domain.ProbeResult{
		Kind:        domain.ProbeSSLStrip,
		Passed:      !stripped,
		Severity:    domain.SeverityInfo,
		MessageEN:   "All HTTPS connections are secure",
		MessageMR:   "सर्व HTTPS कनेक्शन सुरक्षित आहेत",
		ExecutionMS: 1000 + s.rand.Intn(1500),
		Details:     map[string]string{"tested_sites": "google.com,facebook.com,uidai.gov.in"},
	}
	if stripped {
		result.Severity = domain.SeverityCritical
		result.MessageEN = "SSL Stripping Detected! HTTPS downgraded to HTTP."
		result.MessageMR = "SSL स्ट्रिपिंग आढळले! HTTPS ला HTTP मध्ये डाउनग्रेड केले."
	}
	return result
}

// arpSpoof flags a gateway MAC that differs from the last one recorded for
// the same bssid. First sightings always pass.
func (s *Simulator) arpSpoof(obs domain.Observation) domain.ProbeResult {
	previous := s.lastGateways[obs.BSSID]
	if obs.GatewayMAC != "" {
		s.lastGateways[obs.BSSID] = obs.GatewayMAC
	}

	spoofed := previous != "" && obs.GatewayMAC != "" && obs.GatewayMAC != previous

	result := domain.ProbeResult{
		Kind:        domain.ProbeARPSpoof,
		Passed:      !spoofed,
		Severity:    domain.SeverityInfo,
		MessageEN:   "Gateway MAC is consistent",
		MessageMR:   "गेटवे MAC सुसंगत आहे",
		ExecutionMS: 100 + s.rand.Intn(400),
		Details: map[string]string{
			"current_gateway_mac":  obs.GatewayMAC,
			"previous_gateway_mac": previous,
		},
	}
	if spoofed {
		result.Severity = domain.SeverityCritical
		result.Confidence = 0.85
		result.MessageEN = "Gateway MAC changed! Possible MITM attack."
		result.MessageMR = "गेटवे MAC बदलला! संभाव्य MITM हल्ला."
	}
	return result
}
