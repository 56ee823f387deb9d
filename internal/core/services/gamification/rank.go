package gamification

import (
	"sort"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// RankUsers assigns dense ranks 1..N ordered by points descending. The sort
// is stable, so users with equal points keep their input order. The input
// slice is not modified.
func RankUsers(users []domain.User) []domain.User {
	ranked := make([]domain.User, len(users))
	copy(ranked, users)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
