package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
	"github.com/suraksha-labs/suraksha/internal/telemetry"
)

// ProbeHandler runs the simulated security tests.
type ProbeHandler struct {
	Runner ports.ProbeRunner
}

// NewProbeHandler creates a new ProbeHandler.
func NewProbeHandler(runner ports.ProbeRunner) *ProbeHandler {
	return &ProbeHandler{Runner: runner}
}

type probeRequest struct {
	Kind        domain.ProbeKind   `json:"test_type"`
	Observation domain.Observation `json:"observation"`
}

// HandleSecurityTests executes one simulated probe, or all of them when no
// test_type is given.
func (h *ProbeHandler) HandleSecurityTests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req probeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := domain.ValidateObservation(req.Observation); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	kinds := []domain.ProbeKind{domain.ProbeDNSLeak, domain.ProbeSSLStrip, domain.ProbeARPSpoof}
	if req.Kind != "" {
		kinds = []domain.ProbeKind{req.Kind}
	}

	results := make([]domain.ProbeResult, 0, len(kinds))
	for _, kind := range kinds {
		result, err := h.Runner.Run(r.Context(), kind, req.Observation)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownProbe) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Probe failed", http.StatusInternalServerError)
			return
		}

		outcome := "passed"
		if !result.Passed {
			outcome = "failed"
		}
		telemetry.ProbesTotal.WithLabelValues(string(kind), outcome).Inc()

		results = append(results, result)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"results": results,
	})
}
