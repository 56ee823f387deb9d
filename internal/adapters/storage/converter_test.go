package storage

import (
	"testing"
	"time"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

func TestScanConversionRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	rec := domain.ScanRecord{
		ID:         "s-1",
		UserID:     "u-1",
		Timestamp:  now,
		SSID:       "HomeNet",
		BSSID:      "AA:BB:CC:DD:EE:FF",
		Encryption: domain.EncryptionWPA3,
		SignalDBM:  -55,
		Score:      85,
		Status:     domain.StatusSafe,
		Alerts: []domain.Alert{
			{Severity: domain.SeverityMedium, Category: domain.AlertPublicNetwork, MessageEN: "Public/Guest Network.", MessageMR: "सार्वजनिक नेटवर्क"},
		},
	}

	model := scanToModel(rec)
	if model.Encryption != "WPA3" || model.Status != "SAFE" {
		t.Errorf("enum fields not flattened: %+v", model)
	}
	if model.AlertsJSON == "" || model.AlertsJSON == "[]" {
		t.Errorf("alerts not encoded: %q", model.AlertsJSON)
	}

	restored := scanToDomain(model)
	if restored.ID != rec.ID || restored.Score != rec.Score || restored.Status != rec.Status {
		t.Errorf("round trip mismatch: %+v", restored)
	}
	if len(restored.Alerts) != 1 || restored.Alerts[0].Category != domain.AlertPublicNetwork {
		t.Errorf("alerts round trip mismatch: %+v", restored.Alerts)
	}
}

func TestScanToDomainEmptyAlerts(t *testing.T) {
	rec := scanToDomain(ScanModel{ID: "s-1", AlertsJSON: "[]"})
	if len(rec.Alerts) != 0 {
		t.Errorf("expected no alerts, got %v", rec.Alerts)
	}
}

func TestUserConversionExcludesCounters(t *testing.T) {
	u := domain.User{
		ID:       "u-1",
		Username: "asha",
		Role:     domain.RoleMember,
		Points:   300,
		Level:    4,
		Rank:     2,
	}

	model := userToModel(u)
	if model.Shares != 0 || model.Helps != 0 {
		t.Errorf("shares/helps are storage owned and must not come from the domain: %+v", model)
	}

	model.Shares = 7
	restored := userToDomain(model)
	if restored.Points != 300 || restored.Level != 4 || restored.Rank != 2 {
		t.Errorf("round trip mismatch: %+v", restored)
	}
}
