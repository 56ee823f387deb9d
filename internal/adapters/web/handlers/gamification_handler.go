package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/suraksha-labs/suraksha/internal/adapters/web/middleware"
	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
	"github.com/suraksha-labs/suraksha/internal/core/services/gamification"
)

// leaderboardLimit caps the number of entries returned per request.
const leaderboardLimit = 50

// GamificationHandler serves the leaderboard, profiles, and badge surfaces.
type GamificationHandler struct {
	Engine ports.GamificationEngine
	Users  ports.UserRepository
	Scans  ports.ScanRepository
}

// NewGamificationHandler creates a new GamificationHandler.
func NewGamificationHandler(engine ports.GamificationEngine, users ports.UserRepository, scans ports.ScanRepository) *GamificationHandler {
	return &GamificationHandler{Engine: engine, Users: users, Scans: scans}
}

type leaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}

// HandleLeaderboard returns the top users ordered by rank.
func (h *GamificationHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.Users.List(r.Context())
	if err != nil {
		log.Printf("Failed to list users for leaderboard: %v", err)
		http.Error(w, "Failed to load leaderboard", http.StatusInternalServerError)
		return
	}

	// List returns insertion order; re-sort by points so the leaderboard
	// matches the stored dense ranking, ties broken by that same order.
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Points > users[j].Points
	})
	if len(users) > leaderboardLimit {
		users = users[:leaderboardLimit]
	}

	entries := make([]leaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = leaderboardEntry{
			Rank:     i + 1,
			Username: u.Username,
			Points:   u.Points,
			Level:    u.Level,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"leaderboard": entries,
	})
}

// HandleProfile returns the authenticated user's profile with activity
// counters and badge progress.
func (h *GamificationHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user := middleware.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	activity, err := h.Scans.ActivitySummary(r.Context(), user.ID)
	if err != nil {
		log.Printf("Failed to load activity for %s: %v", user.Username, err)
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	badges, err := h.Engine.BadgeStatuses(r.Context(), user.ID)
	if err != nil {
		log.Printf("Failed to load badges for %s: %v", user.Username, err)
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":     user,
		"activity": activity,
		"badges":   badges,
	})
}

// HandleBadges returns the badge catalog with the user's progress.
func (h *GamificationHandler) HandleBadges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user := middleware.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	statuses, err := h.Engine.BadgeStatuses(r.Context(), user.ID)
	if err != nil {
		log.Printf("Failed to load badges for %s: %v", user.Username, err)
		http.Error(w, "Failed to load badges", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"catalog":  gamification.Badges(),
		"statuses": statuses,
	})
}

// HandleShare records one shared safety report for the authenticated user.
func (h *GamificationHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	h.handleCounter(w, r, h.Users.IncrementShares)
}

// HandleHelp records one community help action for the authenticated user.
func (h *GamificationHandler) HandleHelp(w http.ResponseWriter, r *http.Request) {
	h.handleCounter(w, r, h.Users.IncrementHelps)
}

func (h *GamificationHandler) handleCounter(w http.ResponseWriter, r *http.Request, increment func(ctx context.Context, userID string) error) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user := middleware.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := increment(r.Context(), user.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Unknown user", http.StatusNotFound)
			return
		}
		log.Printf("Failed to record action for %s: %v", user.Username, err)
		http.Error(w, "Failed to record action", http.StatusInternalServerError)
		return
	}

	// Re-evaluate badges so helper/educator progress is visible immediately.
	statuses, err := h.Engine.BadgeStatuses(r.Context(), user.ID)
	if err != nil {
		log.Printf("Failed to refresh badges for %s: %v", user.Username, err)
		http.Error(w, "Failed to refresh badges", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "recorded",
		"statuses": statuses,
	})
}
