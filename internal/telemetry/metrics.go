package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ScansTotal counts scored observations, labeled by verdict.
	ScansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "scans_total",
			Help:      "Total number of observations scored",
		},
		[]string{"status"},
	)

	// AlertsTotal counts alerts emitted by the scoring cascade.
	AlertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "alerts_total",
			Help:      "Total number of alerts emitted by the risk cascade",
		},
		[]string{"severity", "category"},
	)

	// PointsAwarded counts gamification points handed out.
	PointsAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "points_awarded_total",
			Help:      "Total number of gamification points awarded",
		},
	)

	// BadgesEarned counts newly earned badges.
	BadgesEarned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "badges_earned_total",
			Help:      "Total number of badges earned",
		},
		[]string{"badge_id"},
	)

	// RankRecomputeDuration observes the population-wide re-ranking pass.
	RankRecomputeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "suraksha",
			Name:      "rank_recompute_duration_seconds",
			Help:      "Duration of the population-wide rank recompute pass",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ProbesTotal counts simulated probe runs.
	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "probes_total",
			Help:      "Total number of simulated probe runs",
		},
		[]string{"kind", "result"},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry
// This function is idempotent and can be called multiple times safely
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(ScansTotal)
		prometheus.DefaultRegisterer.Register(AlertsTotal)
		prometheus.DefaultRegisterer.Register(PointsAwarded)
		prometheus.DefaultRegisterer.Register(BadgesEarned)
		prometheus.DefaultRegisterer.Register(RankRecomputeDuration)
		prometheus.DefaultRegisterer.Register(ProbesTotal)
	})
}
