package domain

// TrustTrend classifies whether an access point's recent trust is rising,
// falling, or flat relative to its own history.
type TrustTrend string

const (
	TrendStable    TrustTrend = "STABLE"
	TrendImproving TrustTrend = "IMPROVING"
	TrendDegrading TrustTrend = "DEGRADING"
	TrendUnknown   TrustTrend = "UNKNOWN"
)

// TrustReport is the time-decayed reputation of one access point, derived
// fresh on every request from its stored score history.
type TrustReport struct {
	Score        int        `json:"score"`
	Trend        TrustTrend `json:"trend"`
	HistoryCount int        `json:"history_count"`
}
