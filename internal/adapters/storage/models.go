package storage

import "time"

// ScanModel is the GORM model for stored scans. It keeps the raw
// observation fields worth persisting together with the derived assessment,
// so history and activity queries need no joins.
type ScanModel struct {
	ID         string    `gorm:"primaryKey"`
	UserID     string    `gorm:"index"` // empty for anonymous scans
	Timestamp  time.Time `gorm:"index"`
	SSID       string
	BSSID      string `gorm:"column:bssid;index"`
	Encryption string
	SignalDBM  int
	Score      int
	Status     string `gorm:"index"` // SAFE, WARNING, DANGER
	AlertsJSON string // JSON encoded []domain.Alert
}

// UserModel is the GORM model for users and their gamification state.
type UserModel struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	Points       int `gorm:"index"`
	Level        int
	Rank         int
	Shares       int // shared safety reports, feeds the helper badge
	Helps        int // community help actions, feeds the educator badge
	CreatedAt    time.Time
	LastLogin    time.Time
}

// UserBadgeModel stores per-user badge progress.
type UserBadgeModel struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   string `gorm:"index;uniqueIndex:idx_user_badge"`
	BadgeID  string `gorm:"uniqueIndex:idx_user_badge"`
	Progress int
	Earned   bool
}
