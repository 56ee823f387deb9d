package ports

import (
	"context"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// ScanRepository defines the persistence layer for scans and risk logs.
type ScanRepository interface {
	// SaveScan persists one scored scan (raw fields plus assessment).
	SaveScan(ctx context.Context, rec domain.ScanRecord) error

	// RecentScores returns up to limit stored scores for a bssid,
	// newest first.
	RecentScores(ctx context.Context, bssid string, limit int) ([]int, error)

	// ActivitySummary derives the aggregated activity counters for a user
	// from the stored scans and logs.
	ActivitySummary(ctx context.Context, userID string) (domain.ActivitySummary, error)

	// RecentScans returns up to limit stored scans, newest first, for
	// reporting surfaces.
	RecentScans(ctx context.Context, limit int) ([]domain.ScanRecord, error)
}

// UserRepository defines the persistence layer for users and badge progress.
type UserRepository interface {
	// Save creates or updates a user.
	Save(ctx context.Context, user domain.User) error
	// GetByUsername retrieves a user by their username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetByID retrieves a user by their ID. Returns domain.ErrUserNotFound
	// when no such user exists.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users in stable insertion order (creation time
	// ascending). Rank recomputation depends on this order for ties.
	List(ctx context.Context) ([]domain.User, error)
	// SaveRanks persists the rank fields of the given users in one pass.
	SaveRanks(ctx context.Context, users []domain.User) error

	// BadgeProgress returns the stored per-badge progress for a user.
	BadgeProgress(ctx context.Context, userID string) ([]domain.BadgeProgress, error)
	// SaveBadgeProgress upserts one progress row.
	SaveBadgeProgress(ctx context.Context, userID string, progress domain.BadgeProgress) error

	// IncrementShares records one shared safety report.
	IncrementShares(ctx context.Context, userID string) error
	// IncrementHelps records one community help action.
	IncrementHelps(ctx context.Context, userID string) error
}

// Storage aggregates the persistence surfaces plus lifecycle.
type Storage interface {
	ScanRepository
	UserRepository

	// Close closes the storage connection.
	Close() error
}
