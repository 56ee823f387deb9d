package domain

// BadgeMetric names the activity counter a badge's progress is measured against.
type BadgeMetric string

const (
	MetricScans          BadgeMetric = "scans"
	MetricUniqueNetworks BadgeMetric = "unique_networks"
	MetricThreats        BadgeMetric = "threats"
	MetricShares         BadgeMetric = "shares"
	MetricRank           BadgeMetric = "rank"
	MetricHelps          BadgeMetric = "helps"
)

// BadgeDefinition describes one achievement from the static badge catalog.
type BadgeDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	NameMR      string      `json:"name_local"`
	Description string      `json:"description"`
	Requirement int         `json:"requirement"`
	Metric      BadgeMetric `json:"metric"`
}

// BadgeProgress tracks one user's progress towards one badge. The Earned
// flag is one-way: once set it never reverts, even if the underlying
// activity counter later reads lower.
type BadgeProgress struct {
	BadgeID  string `json:"badge_id"`
	Progress int    `json:"progress"`
	Earned   bool   `json:"earned"`
}

// BadgeStatus is the API projection of progress against a definition.
type BadgeStatus struct {
	BadgeID  string `json:"badge_id"`
	Earned   bool   `json:"earned"`
	Progress int    `json:"progress"`
	Required int    `json:"total_required"`
}

// ActivitySummary carries the aggregated activity counters the persistence
// layer derives from stored scans and logs. The gamification engine owns
// the progression math, never the counting.
type ActivitySummary struct {
	Scans          int `json:"scans_count"`
	UniqueNetworks int `json:"unique_networks"`
	Threats        int `json:"threats_found"`
	Shares         int `json:"shares_count"`
	Helps          int `json:"helps_count"`
}

// AwardResult summarizes the outcome of one point-awarding transaction.
type AwardResult struct {
	PointsAwarded int      `json:"points_awarded"`
	TotalPoints   int      `json:"total_points"`
	Level         int      `json:"level"`
	Rank          int      `json:"rank"`
	NewBadges     []string `json:"newly_earned_badges"`
}
