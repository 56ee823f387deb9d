package storage

import (
	"context"
	"errors"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Save creates or updates a user. The shares/helps counters are storage
// owned and preserved across saves.
func (a *SQLiteAdapter) Save(ctx context.Context, user domain.User) error {
	model := userToModel(user)

	var existing UserModel
	err := a.db.WithContext(ctx).Select("shares", "helps").First(&existing, "id = ?", user.ID).Error
	if err == nil {
		model.Shares = existing.Shares
		model.Helps = existing.Helps
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return a.db.WithContext(ctx).Save(&model).Error
}

// GetByUsername retrieves a user by their username.
func (a *SQLiteAdapter) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var model UserModel
	if err := a.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := userToDomain(model)
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (a *SQLiteAdapter) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var model UserModel
	if err := a.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := userToDomain(model)
	return &user, nil
}

// List returns all users ordered by creation time ascending. Rank
// recomputation relies on this stable order for tie-breaking.
func (a *SQLiteAdapter) List(ctx context.Context) ([]domain.User, error) {
	var models []UserModel
	if err := a.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]domain.User, len(models))
	for i, m := range models {
		users[i] = userToDomain(m)
	}
	return users, nil
}

// SaveRanks persists the rank fields of the given users in one transaction.
func (a *SQLiteAdapter) SaveRanks(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			if err := tx.Model(&UserModel{}).
				Where("id = ?", u.ID).
				Update("rank", u.Rank).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// BadgeProgress returns the stored per-badge progress for a user.
func (a *SQLiteAdapter) BadgeProgress(ctx context.Context, userID string) ([]domain.BadgeProgress, error) {
	var models []UserBadgeModel
	if err := a.db.WithContext(ctx).Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}

	progress := make([]domain.BadgeProgress, len(models))
	for i, m := range models {
		progress[i] = badgeToDomain(m)
	}
	return progress, nil
}

// SaveBadgeProgress upserts one progress row.
func (a *SQLiteAdapter) SaveBadgeProgress(ctx context.Context, userID string, progress domain.BadgeProgress) error {
	model := UserBadgeModel{
		UserID:   userID,
		BadgeID:  progress.BadgeID,
		Progress: progress.Progress,
		Earned:   progress.Earned,
	}
	return a.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "earned"}),
	}).Create(&model).Error
}

// IncrementShares records one shared safety report.
func (a *SQLiteAdapter) IncrementShares(ctx context.Context, userID string) error {
	return a.incrementCounter(ctx, userID, "shares")
}

// IncrementHelps records one community help action.
func (a *SQLiteAdapter) IncrementHelps(ctx context.Context, userID string) error {
	return a.incrementCounter(ctx, userID, "helps")
}

func (a *SQLiteAdapter) incrementCounter(ctx context.Context, userID, column string) error {
	result := a.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", userID).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
