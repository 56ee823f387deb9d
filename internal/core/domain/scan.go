package domain

import "time"

// ScanRecord is one persisted scan: the raw observation fields worth keeping
// plus the assessment derived from them. UserID is empty for anonymous scans,
// which are scored but never attributed to gamification.
type ScanRecord struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	SSID       string         `json:"ssid"`
	BSSID      string         `json:"bssid"`
	Encryption EncryptionMode `json:"encryption"`
	SignalDBM  int            `json:"signal_dbm"`
	Score      int            `json:"risk_score"`
	Status     NetworkStatus  `json:"status"`
	Alerts     []Alert        `json:"alerts"`
}
