// Package reputation aggregates an access point's stored score history into
// a time-decayed trust score and trend.
package reputation

import (
	"math"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
)

const (
	// weightStep is how much weight each older sample loses.
	weightStep = 0.1
	// weightFloor keeps even the oldest samples from vanishing entirely.
	weightFloor = 0.1
	// trendBand is the dead zone around the historical mean inside which
	// the trend reads STABLE.
	trendBand = 5.0
)

// Aggregator computes historical trust. Stateless and safe for concurrent use.
type Aggregator struct{}

var _ ports.TrustAggregator = (*Aggregator)(nil)

// NewAggregator creates a new aggregator instance.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// HistoricalTrust summarizes a score history, newest first. Total over
// possibly-empty input: no history yields {0, UNKNOWN, 0}.
//
// The decayed weighting rewards recent remediation faster than it punishes
// a single bad recent sample: old incidents fade, but a lone very recent
// incident still pulls the weighted mean down more than an old one would.
func (a *Aggregator) HistoricalTrust(scores []int) domain.TrustReport {
	if len(scores) == 0 {
		return domain.TrustReport{Score: 0, Trend: domain.TrendUnknown, HistoryCount: 0}
	}

	var weightedSum, totalWeight float64
	for i, score := range scores {
		weight := math.Max(weightFloor, 1.0-weightStep*float64(i))
		weightedSum += float64(score) * weight
		totalWeight += weight
	}

	return domain.TrustReport{
		Score:        int(math.Round(weightedSum / totalWeight)),
		Trend:        trend(scores),
		HistoryCount: len(scores),
	}
}

// trend compares the newest score against the arithmetic mean of all older
// samples. Fewer than two samples is STABLE by definition.
func trend(scores []int) domain.TrustTrend {
	if len(scores) < 2 {
		return domain.TrendStable
	}

	newest := float64(scores[0])
	var olderSum float64
	for _, s := range scores[1:] {
		olderSum += float64(s)
	}
	olderMean := olderSum / float64(len(scores)-1)

	switch {
	case newest > olderMean+trendBand:
		return domain.TrendImproving
	case newest < olderMean-trendBand:
		return domain.TrendDegrading
	default:
		return domain.TrendStable
	}
}
