package gamification

import "github.com/suraksha-labs/suraksha/internal/core/domain"

// badgeCatalog is the fixed set of six achievements. Declared order is the
// evaluation order; the catalog is immutable after process start.
var badgeCatalog = []domain.BadgeDefinition{
	{
		ID:          "guardian",
		Name:        "Cyber Guardian",
		NameMR:      "सायबर रक्षक",
		Description: "Scan 50 networks",
		Requirement: 50,
		Metric:      domain.MetricScans,
	},
	{
		ID:          "scout",
		Name:        "Network Scout",
		NameMR:      "नेटवर्क स्काउट",
		Description: "Discover 20 new networks",
		Requirement: 20,
		Metric:      domain.MetricUniqueNetworks,
	},
	{
		ID:          "expert",
		Name:        "Security Expert",
		NameMR:      "सुरक्षा तज्ञ",
		Description: "Find 10 security threats",
		Requirement: 10,
		Metric:      domain.MetricThreats,
	},
	{
		ID:          "helper",
		Name:        "Community Helper",
		NameMR:      "समुदाय मदतनीस",
		Description: "Share 5 safety reports",
		Requirement: 5,
		Metric:      domain.MetricShares,
	},
	{
		ID:          "champion",
		Name:        "Safety Champion",
		NameMR:      "सुरक्षा विजेता",
		Description: "Reach top 10 on leaderboard",
		Requirement: 10,
		Metric:      domain.MetricRank,
	},
	{
		ID:          "educator",
		Name:        "Cyber Educator",
		NameMR:      "सायबर शिक्षक",
		Description: "Help 25 people stay safe",
		Requirement: 25,
		Metric:      domain.MetricHelps,
	},
}

// Badges returns a copy of the badge catalog.
func Badges() []domain.BadgeDefinition {
	out := make([]domain.BadgeDefinition, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}
