package domain

import "errors"

// ProbeKind identifies one of the simulated network probes.
type ProbeKind string

const (
	ProbeDNSLeak  ProbeKind = "DNS_LEAK"
	ProbeSSLStrip ProbeKind = "SSL_STRIP"
	ProbeARPSpoof ProbeKind = "ARP_SPOOF"
)

var ErrUnknownProbe = errors.New("unknown probe kind")

// IsValid checks if the kind names a registered probe.
func (k ProbeKind) IsValid() bool {
	switch k {
	case ProbeDNSLeak, ProbeSSLStrip, ProbeARPSpoof:
		return true
	}
	return false
}

// ProbeResult is the outcome of one simulated probe run. These probes are
// randomized stand-ins for real DNS/TLS/ARP checks and perform no network I/O.
type ProbeResult struct {
	Kind        ProbeKind         `json:"test_type"`
	Passed      bool              `json:"passed"`
	Severity    AlertSeverity     `json:"severity"`
	MessageEN   string            `json:"message"`
	MessageMR   string            `json:"message_mr"`
	Confidence  float64           `json:"confidence,omitempty"`
	ExecutionMS int               `json:"execution_time_ms"`
	Details     map[string]string `json:"details,omitempty"`
}
