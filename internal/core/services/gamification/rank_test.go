package gamification

import (
	"testing"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

func TestRankUsers(t *testing.T) {
	users := []domain.User{
		{ID: "a", Points: 50},
		{ID: "b", Points: 200},
		{ID: "c", Points: 100},
	}

	ranked := RankUsers(users)

	wantOrder := []string{"b", "c", "a"}
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, ranked[i].ID, id)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("rank of %s = %d, want %d", ranked[i].ID, ranked[i].Rank, i+1)
		}
	}
}

func TestRankUsersStableTies(t *testing.T) {
	// Equal points keep input order, so a later registrant never jumps
	// ahead of an earlier one without outscoring them.
	users := []domain.User{
		{ID: "first", Points: 100},
		{ID: "second", Points: 100},
		{ID: "third", Points: 100},
	}

	ranked := RankUsers(users)

	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].ID != want {
			t.Errorf("tie order broken: position %d = %s, want %s", i, ranked[i].ID, want)
		}
	}
}

func TestRankUsersDensePermutation(t *testing.T) {
	users := []domain.User{
		{ID: "a", Points: 10},
		{ID: "b", Points: 10},
		{ID: "c", Points: 5},
		{ID: "d", Points: 99},
	}

	ranked := RankUsers(users)

	seen := make(map[int]bool)
	for _, u := range ranked {
		if u.Rank < 1 || u.Rank > len(users) {
			t.Errorf("rank %d outside [1,%d]", u.Rank, len(users))
		}
		if seen[u.Rank] {
			t.Errorf("duplicate rank %d", u.Rank)
		}
		seen[u.Rank] = true
	}
}

func TestRankUsersDoesNotMutateInput(t *testing.T) {
	users := []domain.User{
		{ID: "a", Points: 1},
		{ID: "b", Points: 2},
	}

	RankUsers(users)

	if users[0].ID != "a" || users[0].Rank != 0 {
		t.Errorf("input slice was mutated: %+v", users[0])
	}
}
