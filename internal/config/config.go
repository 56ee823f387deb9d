package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Addr          string
	DBPath        string
	Debug         bool
	HistoryLimit  int // scans considered by the trust aggregator
	ScanPoints    int // points awarded per attributed scan
	ThreatPoints  int // extra points when a scan finds a threat
	AdminUser     string
	AdminPassword string
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.Addr = getEnv("SURAKSHA_ADDR", ":8080")
	cfg.DBPath = getEnv("SURAKSHA_DB", getDefaultDBPath())
	cfg.HistoryLimit = getEnvInt("SURAKSHA_HISTORY_LIMIT", 10)
	cfg.ScanPoints = getEnvInt("SURAKSHA_SCAN_POINTS", 10)
	cfg.ThreatPoints = getEnvInt("SURAKSHA_THREAT_POINTS", 25)
	cfg.AdminUser = getEnv("SURAKSHA_ADMIN_USER", "admin")
	cfg.AdminPassword = getEnv("SURAKSHA_ADMIN_PASSWORD", "")

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable verbose debug logging")
	flag.IntVar(&cfg.HistoryLimit, "history", cfg.HistoryLimit, "Scans considered by the trust aggregator")

	flag.Parse()

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// getDefaultDBPath returns the default database path in user's home directory.
// Creates the directory if it doesn't exist.
func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory, using current dir: %v", err)
		return "suraksha.db"
	}

	dir := filepath.Join(home, ".suraksha")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: Could not create .suraksha directory, using current dir: %v", err)
		return "suraksha.db"
	}

	return filepath.Join(dir, "suraksha.db")
}
