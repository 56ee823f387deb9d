package ports

import (
	"context"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// RiskScorer turns one network observation into a scored assessment.
// Implementations must be pure: same observation in, same assessment out.
type RiskScorer interface {
	Assess(obs domain.Observation) domain.RiskAssessment
}

// TrustAggregator summarizes an access point's stored score history
// (newest first) into a time-decayed trust report.
type TrustAggregator interface {
	HistoricalTrust(scores []int) domain.TrustReport
}

// GamificationEngine owns the points/level/rank/badge progression math.
// Counting and durability belong to the persistence collaborator.
type GamificationEngine interface {
	// AwardPoints adds delta points to the user, recomputes level and the
	// population-wide ranking, re-evaluates badges, and reports the outcome.
	// Returns domain.ErrUserNotFound for unknown identities.
	AwardPoints(ctx context.Context, userID string, delta int) (*domain.AwardResult, error)

	// RecomputeRanks reassigns dense ranks 1..N over the whole population,
	// ordered by points descending with stable tie-breaking.
	RecomputeRanks(ctx context.Context) error

	// BadgeStatuses projects the user's badge progress against the catalog.
	BadgeStatuses(ctx context.Context, userID string) ([]domain.BadgeStatus, error)
}

// ProbeRunner executes the simulated network probes. No real probing
// happens behind this port; results are randomized stand-ins.
type ProbeRunner interface {
	Run(ctx context.Context, kind domain.ProbeKind, obs domain.Observation) (domain.ProbeResult, error)
}
