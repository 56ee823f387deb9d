// Package app assembles the services and adapters into a running system.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/suraksha-labs/suraksha/internal/adapters/reporting"
	"github.com/suraksha-labs/suraksha/internal/adapters/storage"
	webserver "github.com/suraksha-labs/suraksha/internal/adapters/web/server"
	"github.com/suraksha-labs/suraksha/internal/config"
	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/services/auth"
	"github.com/suraksha-labs/suraksha/internal/core/services/gamification"
	"github.com/suraksha-labs/suraksha/internal/core/services/phishing"
	"github.com/suraksha-labs/suraksha/internal/core/services/probe"
	"github.com/suraksha-labs/suraksha/internal/core/services/reputation"
	"github.com/suraksha-labs/suraksha/internal/core/services/risk"
	"github.com/suraksha-labs/suraksha/internal/telemetry"
	"golang.org/x/crypto/bcrypt"
)

// Application holds the core components of the system. It acts as the
// facade that orchestrates services and infrastructure.
type Application struct {
	Config      *config.Config
	Store       *storage.SQLiteAdapter
	AuthService *auth.AuthService
	WebServer   *webserver.Server
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	store, err := app.initStorage()
	if err != nil {
		return err
	}
	app.Store = store

	// 2. Domain Services
	scorer := risk.NewScorer()
	trust := reputation.NewAggregator()
	engine := gamification.NewEngine(store, store)
	runner := probe.NewSimulator()
	guard := phishing.NewGuard()
	exporter := reporting.NewPDFExporter()

	app.AuthService = auth.NewAuthService(store)

	if err := app.ensureDefaultAdmin(); err != nil {
		log.Printf("Warning: could not ensure default admin: %v", err)
	}

	// 3. Server
	app.WebServer = webserver.NewServer(app.Config, store, app.AuthService, scorer, trust, engine, runner, guard, exporter)

	return nil
}

func (app *Application) initStorage() (*storage.SQLiteAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(app.Config.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory: %w", err)
	}

	store, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	return store, nil
}

// ensureDefaultAdmin provisions the admin account on first boot. Without a
// configured password no account is created; the instance then only serves
// anonymous scans until someone registers.
func (app *Application) ensureDefaultAdmin() error {
	ctx := context.Background()

	_, err := app.Store.GetByUsername(ctx, app.Config.AdminUser)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if app.Config.AdminPassword == "" {
		log.Println("No admin password configured, skipping admin provisioning")
		return nil
	}

	log.Println("Provisioning default admin user...")
	admin, err := domain.NewUser(uuid.New().String(), app.Config.AdminUser, domain.RoleAdmin)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(app.Config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin.PasswordHash = string(hash)

	return app.Store.Save(ctx, *admin)
}

// Run starts the web server and blocks until the context is cancelled.
func (app *Application) Run(ctx context.Context) error {
	defer func() {
		if err := app.Store.Close(); err != nil {
			log.Printf("Storage close error: %v", err)
		}
	}()

	return app.WebServer.Run(ctx)
}
