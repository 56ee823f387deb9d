package gamification

import (
	"testing"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

func findProgress(t *testing.T, rows []domain.BadgeProgress, badgeID string) domain.BadgeProgress {
	t.Helper()
	for _, row := range rows {
		if row.BadgeID == badgeID {
			return row
		}
	}
	t.Fatalf("no progress row for %s", badgeID)
	return domain.BadgeProgress{}
}

func TestEvaluateBadgesEarning(t *testing.T) {
	stats := domain.ActivitySummary{
		Scans:          50,
		UniqueNetworks: 3,
		Threats:        10,
		Shares:         1,
		Helps:          0,
	}

	updated, newlyEarned := evaluateBadges(stats, 0, nil)

	if len(updated) != len(badgeCatalog) {
		t.Fatalf("expected one row per catalog entry, got %d", len(updated))
	}

	guardian := findProgress(t, updated, "guardian")
	if !guardian.Earned || guardian.Progress != 50 {
		t.Errorf("guardian should be earned at 50 scans, got %+v", guardian)
	}

	expert := findProgress(t, updated, "expert")
	if !expert.Earned {
		t.Errorf("expert should be earned at 10 threats, got %+v", expert)
	}

	scout := findProgress(t, updated, "scout")
	if scout.Earned || scout.Progress != 3 {
		t.Errorf("scout should be unearned at 3 networks, got %+v", scout)
	}

	if len(newlyEarned) != 2 {
		t.Errorf("expected 2 newly earned badges, got %v", newlyEarned)
	}
}

func TestEvaluateBadgesEarnedIsOneWay(t *testing.T) {
	current := []domain.BadgeProgress{
		{BadgeID: "guardian", Progress: 50, Earned: true},
	}

	// Counters can only grow in practice, but the flag must survive even
	// a lower reading.
	updated, newlyEarned := evaluateBadges(domain.ActivitySummary{Scans: 10}, 0, current)

	guardian := findProgress(t, updated, "guardian")
	if !guardian.Earned {
		t.Errorf("earned flag must never revert, got %+v", guardian)
	}
	if guardian.Progress != 50 {
		t.Errorf("earned badge must keep its max progress, got %d", guardian.Progress)
	}
	if len(newlyEarned) != 0 {
		t.Errorf("already earned badge reported as new: %v", newlyEarned)
	}
}

func TestEvaluateBadgesNotReannounced(t *testing.T) {
	stats := domain.ActivitySummary{Scans: 60}

	_, first := evaluateBadges(stats, 0, nil)
	if len(first) != 1 || first[0] != "guardian" {
		t.Fatalf("expected guardian earned, got %v", first)
	}

	rows, _ := evaluateBadges(stats, 0, nil)
	_, second := evaluateBadges(stats, 0, rows)
	if len(second) != 0 {
		t.Errorf("badge announced twice: %v", second)
	}
}

func TestChampionRankProgress(t *testing.T) {
	def := domain.BadgeDefinition{Metric: domain.MetricRank, Requirement: 10}

	tests := []struct {
		rank int
		want int
	}{
		{0, 0},  // unranked
		{1, 10}, // top spot maxes out
		{5, 6},
		{10, 1},
		{11, 0}, // outside the window
	}

	for _, tt := range tests {
		if got := progressFor(def, domain.ActivitySummary{}, tt.rank); got != tt.want {
			t.Errorf("progressFor(rank=%d) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestBadgesReturnsCopy(t *testing.T) {
	badges := Badges()
	if len(badges) != 6 {
		t.Fatalf("expected 6 badges, got %d", len(badges))
	}

	badges[0].ID = "tampered"
	if badgeCatalog[0].ID == "tampered" {
		t.Error("Badges() must not expose the underlying catalog")
	}
}

func TestCatalogBilingualNames(t *testing.T) {
	for _, def := range badgeCatalog {
		if def.Name == "" || def.NameMR == "" {
			t.Errorf("badge %s is missing a name translation", def.ID)
		}
		if def.Requirement <= 0 {
			t.Errorf("badge %s has non-positive requirement %d", def.ID, def.Requirement)
		}
	}
}
