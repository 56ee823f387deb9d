package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/suraksha-labs/suraksha/internal/adapters/web/middleware"
	"github.com/suraksha-labs/suraksha/internal/adapters/web/websocket"
	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
	"github.com/suraksha-labs/suraksha/internal/telemetry"
)

// ScanHandler scores incoming observations and serves trust lookups.
type ScanHandler struct {
	Scorer ports.RiskScorer
	Trust  ports.TrustAggregator
	Engine ports.GamificationEngine
	Scans  ports.ScanRepository
	WS     *websocket.Manager

	ScanPoints   int
	ThreatPoints int
	HistoryLimit int
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scorer ports.RiskScorer, trust ports.TrustAggregator, engine ports.GamificationEngine, scans ports.ScanRepository, ws *websocket.Manager, scanPoints, threatPoints, historyLimit int) *ScanHandler {
	return &ScanHandler{
		Scorer:       scorer,
		Trust:        trust,
		Engine:       engine,
		Scans:        scans,
		WS:           ws,
		ScanPoints:   scanPoints,
		ThreatPoints: threatPoints,
		HistoryLimit: historyLimit,
	}
}

type scanResponse struct {
	Assessment domain.RiskAssessment `json:"assessment"`
	Award      *domain.AwardResult   `json:"award,omitempty"`
}

// HandleScan scores one observation, persists the record, and attributes
// points when the request carries a valid session. Anonymous scans are
// scored and stored but never attributed.
func (h *ScanHandler) HandleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var obs domain.Observation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := domain.ValidateObservation(obs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assessment := h.Scorer.Assess(obs)

	telemetry.ScansTotal.WithLabelValues(string(assessment.Status)).Inc()
	for _, alert := range assessment.Alerts {
		telemetry.AlertsTotal.WithLabelValues(string(alert.Severity), string(alert.Category)).Inc()
	}

	user := middleware.UserFromContext(r.Context())

	rec := domain.ScanRecord{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		SSID:       obs.SSID,
		BSSID:      obs.BSSID,
		Encryption: obs.Encryption,
		SignalDBM:  obs.SignalDBM,
		Score:      assessment.Score,
		Status:     assessment.Status,
		Alerts:     assessment.Alerts,
	}
	if user != nil {
		rec.UserID = user.ID
	}
	if err := h.Scans.SaveScan(r.Context(), rec); err != nil {
		log.Printf("Failed to persist scan: %v", err)
		http.Error(w, "Failed to save scan", http.StatusInternalServerError)
		return
	}

	if h.WS != nil {
		h.WS.BroadcastAssessment(assessment)
	}

	resp := scanResponse{Assessment: assessment}
	if user != nil {
		delta := h.ScanPoints
		if assessment.ThreatFound() {
			delta += h.ThreatPoints
		}

		award, err := h.Engine.AwardPoints(r.Context(), user.ID, delta)
		if err != nil {
			// The scan itself succeeded; losing the award is recoverable.
			log.Printf("Failed to award points to %s: %v", user.Username, err)
		} else {
			resp.Award = award
			telemetry.PointsAwarded.Add(float64(award.PointsAwarded))
			for _, badgeID := range award.NewBadges {
				telemetry.BadgesEarned.WithLabelValues(badgeID).Inc()
			}
			if h.WS != nil && len(award.NewBadges) > 0 {
				h.WS.BroadcastBadges(user.Username, award.NewBadges)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleTrust serves the historical trust report for one access point.
func (h *ScanHandler) HandleTrust(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bssid := mux.Vars(r)["bssid"]
	if !domain.IsValidMAC(bssid) {
		http.Error(w, "Invalid BSSID", http.StatusBadRequest)
		return
	}

	scores, err := h.Scans.RecentScores(r.Context(), bssid, h.HistoryLimit)
	if err != nil {
		log.Printf("Failed to load score history for %s: %v", bssid, err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	report := h.Trust.HistoricalTrust(scores)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"bssid":         bssid,
		"trust_score":   report.Score,
		"trend":         report.Trend,
		"history_count": report.HistoryCount,
	})
}
