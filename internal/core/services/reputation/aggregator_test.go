package reputation

import (
	"testing"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

func TestHistoricalTrust(t *testing.T) {
	agg := NewAggregator()

	tests := []struct {
		name      string
		scores    []int
		wantScore int
		wantTrend domain.TrustTrend
		wantCount int
	}{
		{
			name:      "empty history is unknown",
			scores:    nil,
			wantScore: 0,
			wantTrend: domain.TrendUnknown,
			wantCount: 0,
		},
		{
			name:      "single sample is stable",
			scores:    []int{80},
			wantScore: 80,
			wantTrend: domain.TrendStable,
			wantCount: 1,
		},
		{
			name:      "uniform history stays put",
			scores:    []int{90, 90, 90},
			wantScore: 90,
			wantTrend: domain.TrendStable,
			wantCount: 3,
		},
		{
			name:      "recent recovery reads improving",
			scores:    []int{90, 60, 60},
			wantScore: 71,
			wantTrend: domain.TrendImproving,
			wantCount: 3,
		},
		{
			name:      "recent incident reads degrading",
			scores:    []int{40, 90, 90},
			wantScore: 71,
			wantTrend: domain.TrendDegrading,
			wantCount: 3,
		},
		{
			name:      "within the dead band is stable",
			scores:    []int{82, 80, 80},
			wantScore: 81,
			wantTrend: domain.TrendStable,
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agg.HistoricalTrust(tt.scores)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Trend != tt.wantTrend {
				t.Errorf("trend = %s, want %s", got.Trend, tt.wantTrend)
			}
			if got.HistoryCount != tt.wantCount {
				t.Errorf("history count = %d, want %d", got.HistoryCount, tt.wantCount)
			}
		})
	}
}

func TestHistoricalTrustRecencyWeighting(t *testing.T) {
	agg := NewAggregator()

	// Same multiset of scores; the one with the incident up front must
	// come out lower than the one with the incident in the past.
	recentIncident := agg.HistoricalTrust([]int{20, 90, 90, 90, 90})
	oldIncident := agg.HistoricalTrust([]int{90, 90, 90, 90, 20})

	if recentIncident.Score >= oldIncident.Score {
		t.Errorf("recent incident (%d) should weigh more than an old one (%d)",
			recentIncident.Score, oldIncident.Score)
	}
}

func TestHistoricalTrustWeightFloor(t *testing.T) {
	agg := NewAggregator()

	// Past position ten the decay would go negative without the floor;
	// very old samples must still contribute, never invert the mean.
	scores := make([]int, 20)
	for i := range scores {
		scores[i] = 50
	}

	got := agg.HistoricalTrust(scores)
	if got.Score != 50 {
		t.Errorf("uniform long history should average to itself, got %d", got.Score)
	}
}
