package storage

import (
	"encoding/json"
	"log"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// scanToModel converts a domain scan record to its database model.
func scanToModel(rec domain.ScanRecord) ScanModel {
	alertsJSON := "[]"
	if data, err := json.Marshal(rec.Alerts); err == nil {
		alertsJSON = string(data)
	} else {
		log.Printf("Failed to encode alerts for scan %s: %v", rec.ID, err)
	}

	return ScanModel{
		ID:         rec.ID,
		UserID:     rec.UserID,
		Timestamp:  rec.Timestamp,
		SSID:       rec.SSID,
		BSSID:      rec.BSSID,
		Encryption: string(rec.Encryption),
		SignalDBM:  rec.SignalDBM,
		Score:      rec.Score,
		Status:     string(rec.Status),
		AlertsJSON: alertsJSON,
	}
}

// scanToDomain converts a database model to a domain scan record.
func scanToDomain(m ScanModel) domain.ScanRecord {
	var alerts []domain.Alert
	if m.AlertsJSON != "" {
		_ = json.Unmarshal([]byte(m.AlertsJSON), &alerts)
	}

	return domain.ScanRecord{
		ID:         m.ID,
		UserID:     m.UserID,
		Timestamp:  m.Timestamp,
		SSID:       m.SSID,
		BSSID:      m.BSSID,
		Encryption: domain.EncryptionMode(m.Encryption),
		SignalDBM:  m.SignalDBM,
		Score:      m.Score,
		Status:     domain.NetworkStatus(m.Status),
		Alerts:     alerts,
	}
}

// userToModel converts a domain user to its database model. The shares and
// helps counters live only in storage, so callers must not overwrite them;
// repo methods copy them from the existing row.
func userToModel(u domain.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Points:       u.Points,
		Level:        u.Level,
		Rank:         u.Rank,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}

// userToDomain converts a database model to a domain user.
func userToDomain(m UserModel) domain.User {
	return domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		Points:       m.Points,
		Level:        m.Level,
		Rank:         m.Rank,
		CreatedAt:    m.CreatedAt,
		LastLogin:    m.LastLogin,
	}
}

// badgeToDomain converts a badge progress row.
func badgeToDomain(m UserBadgeModel) domain.BadgeProgress {
	return domain.BadgeProgress{
		BadgeID:  m.BadgeID,
		Progress: m.Progress,
		Earned:   m.Earned,
	}
}
