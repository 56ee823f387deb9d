package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/suraksha-labs/suraksha/internal/core/services/phishing"
)

// PhishingHandler checks URLs for typo-squatted lookalikes.
type PhishingHandler struct {
	Guard *phishing.Guard
}

// NewPhishingHandler creates a new PhishingHandler.
func NewPhishingHandler(guard *phishing.Guard) *PhishingHandler {
	return &PhishingHandler{Guard: guard}
}

// HandleCheckURL reports whether a URL looks like a known official site.
func (h *PhishingHandler) HandleCheckURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	verdict := h.Guard.CheckURL(req.URL)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verdict)
}
