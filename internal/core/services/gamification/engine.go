package gamification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
	"github.com/suraksha-labs/suraksha/internal/telemetry"
)

var ErrNegativeDelta = errors.New("point awards cannot be negative")

// Engine coordinates point awards, the population-wide rank recompute, and
// badge evaluation on top of the persistence collaborator. Rank
// recomputation reads and rewrites every user's rank, so every awarding
// transaction is serialized behind one mutex.
type Engine struct {
	users ports.UserRepository
	scans ports.ScanRepository
	mu    sync.Mutex
}

var _ ports.GamificationEngine = (*Engine)(nil)

// NewEngine creates a gamification engine over the given repositories.
func NewEngine(users ports.UserRepository, scans ports.ScanRepository) *Engine {
	return &Engine{users: users, scans: scans}
}

// AwardPoints adds delta points to the user, recomputes level and the whole
// population's ranks, re-evaluates badges from the stored activity counters,
// and reports the outcome. Delta may be zero but never negative; point loss
// is not modeled. Unknown users yield domain.ErrUserNotFound.
func (e *Engine) AwardPoints(ctx context.Context, userID string, delta int) (*domain.AwardResult, error) {
	if delta < 0 {
		return nil, ErrNegativeDelta
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Points += delta
	user.Level = LevelFor(user.Points)
	if err := e.users.Save(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	rank, err := e.recomputeRanksLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	newBadges, err := e.evaluateBadgesLocked(ctx, userID, rank)
	if err != nil {
		return nil, err
	}

	return &domain.AwardResult{
		PointsAwarded: delta,
		TotalPoints:   user.Points,
		Level:         user.Level,
		Rank:          rank,
		NewBadges:     newBadges,
	}, nil
}

// RecomputeRanks reassigns dense ranks 1..N over the whole population.
func (e *Engine) RecomputeRanks(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.recomputeRanksLocked(ctx, "")
	return err
}

// recomputeRanksLocked runs the population pass and returns the rank of the
// user of interest (0 when none requested). Caller must hold e.mu.
func (e *Engine) recomputeRanksLocked(ctx context.Context, userID string) (int, error) {
	start := time.Now()
	defer func() {
		telemetry.RankRecomputeDuration.Observe(time.Since(start).Seconds())
	}()

	users, err := e.users.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list profiles for ranking: %w", err)
	}

	ranked := RankUsers(users)
	if err := e.users.SaveRanks(ctx, ranked); err != nil {
		return 0, fmt.Errorf("failed to persist ranks: %w", err)
	}

	for _, u := range ranked {
		if u.ID == userID {
			return u.Rank, nil
		}
	}
	return 0, nil
}

// BadgeStatuses projects the user's current badge progress against the
// catalog, persisting any progress updates along the way.
func (e *Engine) BadgeStatuses(ctx context.Context, userID string) ([]domain.BadgeStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := e.evaluateBadgesLocked(ctx, userID, user.Rank); err != nil {
		return nil, err
	}

	progress, err := e.users.BadgeProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.BadgeProgress, len(progress))
	for _, p := range progress {
		byID[p.BadgeID] = p
	}

	statuses := make([]domain.BadgeStatus, 0, len(badgeCatalog))
	for _, def := range badgeCatalog {
		row := byID[def.ID]
		statuses = append(statuses, domain.BadgeStatus{
			BadgeID:  def.ID,
			Earned:   row.Earned,
			Progress: row.Progress,
			Required: def.Requirement,
		})
	}
	return statuses, nil
}

// evaluateBadgesLocked re-runs badge evaluation from the stored activity
// counters and persists the updated rows. Caller must hold e.mu.
func (e *Engine) evaluateBadgesLocked(ctx context.Context, userID string, rank int) ([]string, error) {
	stats, err := e.scans.ActivitySummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity summary: %w", err)
	}

	current, err := e.users.BadgeProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load badge progress: %w", err)
	}

	updated, newlyEarned := evaluateBadges(stats, rank, current)
	for _, row := range updated {
		if err := e.users.SaveBadgeProgress(ctx, userID, row); err != nil {
			return nil, fmt.Errorf("failed to save badge progress: %w", err)
		}
	}
	return newlyEarned, nil
}
