// Package storage implements the persistence collaborator on GORM + SQLite.
package storage

import (
	"log"

	"github.com/suraksha-labs/suraksha/internal/core/ports"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// SQLiteAdapter implements ports.Storage using GORM and SQLite.
type SQLiteAdapter struct {
	db *gorm.DB
}

var _ ports.Storage = (*SQLiteAdapter)(nil)

// NewSQLiteAdapter initializes the database and migrates schema.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		log.Printf("Warning: could not enable DB tracing: %v", err)
	}

	// Auto Migrate
	if err := db.AutoMigrate(&ScanModel{}, &UserModel{}, &UserBadgeModel{}); err != nil {
		return nil, err
	}

	// Create Indices for Performance
	db.Exec("CREATE INDEX IF NOT EXISTS idx_scans_bssid_ts ON scan_models(bssid, timestamp)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_scans_user_status ON scan_models(user_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_points ON user_models(points)")

	return &SQLiteAdapter{db: db}, nil
}

// Close closes the storage connection.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
