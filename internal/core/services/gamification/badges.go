package gamification

import "github.com/suraksha-labs/suraksha/internal/core/domain"

// rankWindow is the leaderboard window inside which the champion badge
// accrues progress: rank 10 is worth 1, rank 1 is worth 10.
const rankWindow = 10

// progressFor computes the current metric value for one badge definition.
func progressFor(def domain.BadgeDefinition, stats domain.ActivitySummary, rank int) int {
	switch def.Metric {
	case domain.MetricScans:
		return stats.Scans
	case domain.MetricUniqueNetworks:
		return stats.UniqueNetworks
	case domain.MetricThreats:
		return stats.Threats
	case domain.MetricShares:
		return stats.Shares
	case domain.MetricHelps:
		return stats.Helps
	case domain.MetricRank:
		if rank >= 1 && rank <= rankWindow {
			return rankWindow + 1 - rank
		}
		return 0
	}
	return 0
}

// evaluateBadges walks the catalog in declared order, updates per-badge
// progress, and reports newly earned badge ids. Progress rows are created
// lazily on first evaluation. The earned flag is one-way: a badge already
// earned keeps its flag and never records lower progress.
func evaluateBadges(stats domain.ActivitySummary, rank int, current []domain.BadgeProgress) ([]domain.BadgeProgress, []string) {
	byID := make(map[string]domain.BadgeProgress, len(current))
	for _, p := range current {
		byID[p.BadgeID] = p
	}

	updated := make([]domain.BadgeProgress, 0, len(badgeCatalog))
	var newlyEarned []string

	for _, def := range badgeCatalog {
		row := byID[def.ID]
		row.BadgeID = def.ID

		progress := progressFor(def, stats, rank)
		if row.Earned {
			if progress > row.Progress {
				row.Progress = progress
			}
		} else {
			row.Progress = progress
			if progress >= def.Requirement {
				row.Earned = true
				newlyEarned = append(newlyEarned, def.ID)
			}
		}
		updated = append(updated, row)
	}

	return updated, newlyEarned
}
