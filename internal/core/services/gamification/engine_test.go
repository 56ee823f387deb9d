package gamification

import (
	"context"
	"errors"
	"testing"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// memStore is an in-memory stand-in for the persistence collaborator.
type memStore struct {
	users    []domain.User
	badges   map[string][]domain.BadgeProgress
	activity map[string]domain.ActivitySummary
}

func newMemStore() *memStore {
	return &memStore{
		badges:   make(map[string][]domain.BadgeProgress),
		activity: make(map[string]domain.ActivitySummary),
	}
}

func (m *memStore) Save(ctx context.Context, user domain.User) error {
	for i, u := range m.users {
		if u.ID == user.ID {
			m.users[i] = user
			return nil
		}
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStore) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memStore) SaveRanks(ctx context.Context, users []domain.User) error {
	for _, ranked := range users {
		for i, u := range m.users {
			if u.ID == ranked.ID {
				m.users[i].Rank = ranked.Rank
			}
		}
	}
	return nil
}

func (m *memStore) BadgeProgress(ctx context.Context, userID string) ([]domain.BadgeProgress, error) {
	return m.badges[userID], nil
}

func (m *memStore) SaveBadgeProgress(ctx context.Context, userID string, progress domain.BadgeProgress) error {
	rows := m.badges[userID]
	for i, row := range rows {
		if row.BadgeID == progress.BadgeID {
			rows[i] = progress
			return nil
		}
	}
	m.badges[userID] = append(rows, progress)
	return nil
}

func (m *memStore) IncrementShares(ctx context.Context, userID string) error {
	s := m.activity[userID]
	s.Shares++
	m.activity[userID] = s
	return nil
}

func (m *memStore) IncrementHelps(ctx context.Context, userID string) error {
	s := m.activity[userID]
	s.Helps++
	m.activity[userID] = s
	return nil
}

func (m *memStore) SaveScan(ctx context.Context, rec domain.ScanRecord) error { return nil }

func (m *memStore) RecentScores(ctx context.Context, bssid string, limit int) ([]int, error) {
	return nil, nil
}

func (m *memStore) ActivitySummary(ctx context.Context, userID string) (domain.ActivitySummary, error) {
	return m.activity[userID], nil
}

func (m *memStore) RecentScans(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	return nil, nil
}

func addUser(store *memStore, id string, points int) {
	store.users = append(store.users, domain.User{
		ID:       id,
		Username: id,
		Role:     domain.RoleMember,
		Points:   points,
		Level:    LevelFor(points),
	})
}

func TestAwardPoints(t *testing.T) {
	store := newMemStore()
	addUser(store, "u1", 95)
	engine := NewEngine(store, store)
	ctx := context.Background()

	result, err := engine.AwardPoints(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("AwardPoints failed: %v", err)
	}

	if result.TotalPoints != 105 {
		t.Errorf("total points = %d, want 105", result.TotalPoints)
	}
	if result.Level != 2 {
		t.Errorf("crossing 100 points must reach level 2, got %d", result.Level)
	}
	if result.Rank != 1 {
		t.Errorf("only user should rank first, got %d", result.Rank)
	}

	saved, _ := store.GetByID(ctx, "u1")
	if saved.Points != 105 || saved.Level != 2 {
		t.Errorf("award not persisted: %+v", saved)
	}
}

func TestAwardPointsRejectsNegativeDelta(t *testing.T) {
	store := newMemStore()
	addUser(store, "u1", 50)
	engine := NewEngine(store, store)

	if _, err := engine.AwardPoints(context.Background(), "u1", -5); !errors.Is(err, ErrNegativeDelta) {
		t.Errorf("expected ErrNegativeDelta, got %v", err)
	}
}

func TestAwardPointsUnknownUser(t *testing.T) {
	engine := NewEngine(newMemStore(), newMemStore())

	if _, err := engine.AwardPoints(context.Background(), "ghost", 10); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAwardPointsRecomputesWholePopulation(t *testing.T) {
	store := newMemStore()
	addUser(store, "leader", 200)
	addUser(store, "runner", 150)
	engine := NewEngine(store, store)
	ctx := context.Background()

	result, err := engine.AwardPoints(ctx, "runner", 100)
	if err != nil {
		t.Fatalf("AwardPoints failed: %v", err)
	}
	if result.Rank != 1 {
		t.Errorf("runner overtook the leader, rank = %d, want 1", result.Rank)
	}

	former, _ := store.GetByID(ctx, "leader")
	if former.Rank != 2 {
		t.Errorf("displaced leader must be re-ranked to 2, got %d", former.Rank)
	}
}

func TestAwardPointsZeroDeltaStillRanks(t *testing.T) {
	store := newMemStore()
	addUser(store, "u1", 10)
	engine := NewEngine(store, store)

	result, err := engine.AwardPoints(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("zero delta must be accepted: %v", err)
	}
	if result.Rank != 1 {
		t.Errorf("rank = %d, want 1", result.Rank)
	}
}

func TestAwardPointsEarnsBadges(t *testing.T) {
	store := newMemStore()
	addUser(store, "u1", 0)
	store.activity["u1"] = domain.ActivitySummary{Scans: 50, Threats: 10}
	engine := NewEngine(store, store)

	result, err := engine.AwardPoints(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("AwardPoints failed: %v", err)
	}

	earned := make(map[string]bool, len(result.NewBadges))
	for _, id := range result.NewBadges {
		earned[id] = true
	}
	if !earned["guardian"] || !earned["expert"] {
		t.Errorf("expected guardian and expert, got %v", result.NewBadges)
	}
	// Rank 1 in a one-user population also satisfies the champion window.
	if !earned["champion"] {
		t.Errorf("rank 1 should earn champion, got %v", result.NewBadges)
	}
}

func TestBadgeStatusesProjection(t *testing.T) {
	store := newMemStore()
	addUser(store, "u1", 0)
	store.activity["u1"] = domain.ActivitySummary{Scans: 30}
	engine := NewEngine(store, store)

	statuses, err := engine.BadgeStatuses(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BadgeStatuses failed: %v", err)
	}

	if len(statuses) != 6 {
		t.Fatalf("expected the full catalog, got %d entries", len(statuses))
	}

	for _, s := range statuses {
		if s.BadgeID != "guardian" {
			continue
		}
		if s.Earned || s.Progress != 30 || s.Required != 50 {
			t.Errorf("guardian status = %+v, want 30/50 unearned", s)
		}
	}
}

func TestRecomputeRanks(t *testing.T) {
	store := newMemStore()
	addUser(store, "low", 10)
	addUser(store, "high", 500)
	engine := NewEngine(store, store)
	ctx := context.Background()

	if err := engine.RecomputeRanks(ctx); err != nil {
		t.Fatalf("RecomputeRanks failed: %v", err)
	}

	high, _ := store.GetByID(ctx, "high")
	low, _ := store.GetByID(ctx, "low")
	if high.Rank != 1 || low.Rank != 2 {
		t.Errorf("ranks = %d/%d, want 1/2", high.Rank, low.Rank)
	}
}
