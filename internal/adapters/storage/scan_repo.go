package storage

import (
	"context"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// SaveScan persists one scored scan.
func (a *SQLiteAdapter) SaveScan(ctx context.Context, rec domain.ScanRecord) error {
	model := scanToModel(rec)
	return a.db.WithContext(ctx).Create(&model).Error
}

// RecentScores returns up to limit stored scores for a bssid, newest first.
func (a *SQLiteAdapter) RecentScores(ctx context.Context, bssid string, limit int) ([]int, error) {
	var scores []int
	err := a.db.WithContext(ctx).
		Model(&ScanModel{}).
		Where("bssid = ?", bssid).
		Order("timestamp DESC").
		Limit(limit).
		Pluck("score", &scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// ActivitySummary derives the aggregated activity counters for a user from
// the stored scans. Shares and helps come from the user row counters.
func (a *SQLiteAdapter) ActivitySummary(ctx context.Context, userID string) (domain.ActivitySummary, error) {
	var summary domain.ActivitySummary

	var scans int64
	if err := a.db.WithContext(ctx).
		Model(&ScanModel{}).
		Where("user_id = ?", userID).
		Count(&scans).Error; err != nil {
		return summary, err
	}

	var uniqueNetworks int64
	if err := a.db.WithContext(ctx).
		Model(&ScanModel{}).
		Where("user_id = ?", userID).
		Distinct("bssid").
		Count(&uniqueNetworks).Error; err != nil {
		return summary, err
	}

	var threats int64
	if err := a.db.WithContext(ctx).
		Model(&ScanModel{}).
		Where("user_id = ? AND status IN ?", userID, []string{
			string(domain.StatusWarning),
			string(domain.StatusDanger),
		}).
		Count(&threats).Error; err != nil {
		return summary, err
	}

	var user UserModel
	if err := a.db.WithContext(ctx).
		Select("shares", "helps").
		First(&user, "id = ?", userID).Error; err == nil {
		summary.Shares = user.Shares
		summary.Helps = user.Helps
	}

	summary.Scans = int(scans)
	summary.UniqueNetworks = int(uniqueNetworks)
	summary.Threats = int(threats)
	return summary, nil
}

// RecentScans returns up to limit stored scans, newest first.
func (a *SQLiteAdapter) RecentScans(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	var models []ScanModel
	err := a.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.ScanRecord, len(models))
	for i, m := range models {
		records[i] = scanToDomain(m)
	}
	return records, nil
}
