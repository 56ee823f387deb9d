package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/suraksha-labs/suraksha/internal/adapters/reporting"
	"github.com/suraksha-labs/suraksha/internal/adapters/web/handlers"
	"github.com/suraksha-labs/suraksha/internal/adapters/web/websocket"
	"github.com/suraksha-labs/suraksha/internal/config"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
	"github.com/suraksha-labs/suraksha/internal/core/services/phishing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server handles HTTP and WebSocket connections.
type Server struct {
	Addr        string
	AuthService ports.AuthService
	WSManager   *websocket.Manager

	AuthHandler         *handlers.AuthHandler
	ScanHandler         *handlers.ScanHandler
	GamificationHandler *handlers.GamificationHandler
	ProbeHandler        *handlers.ProbeHandler
	PhishingHandler     *handlers.PhishingHandler
	ReportHandler       *handlers.ReportHandler

	srv *http.Server
}

// NewServer creates a new web server over the assembled collaborators.
func NewServer(cfg *config.Config, store ports.Storage, authService ports.AuthService, scorer ports.RiskScorer, trust ports.TrustAggregator, engine ports.GamificationEngine, runner ports.ProbeRunner, guard *phishing.Guard, exporter *reporting.PDFExporter) *Server {
	wsManager := websocket.NewManager()

	return &Server{
		Addr:        cfg.Addr,
		AuthService: authService,
		WSManager:   wsManager,

		AuthHandler:         handlers.NewAuthHandler(authService),
		ScanHandler:         handlers.NewScanHandler(scorer, trust, engine, store, wsManager, cfg.ScanPoints, cfg.ThreatPoints, cfg.HistoryLimit),
		GamificationHandler: handlers.NewGamificationHandler(engine, store, store),
		ProbeHandler:        handlers.NewProbeHandler(runner),
		PhishingHandler:     handlers.NewPhishingHandler(guard),
		ReportHandler:       handlers.NewReportHandler(store, exporter),
	}
}

// Run starts the server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	handler := SetupRoutes(s)

	// Instrument with OpenTelemetry
	instrumentedHandler := otelhttp.NewHandler(handler, "suraksha-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown implementation
	go func() {
		<-ctx.Done()
		log.Println("Web Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Web Server shutdown error: %v", err)
		}
	}()

	log.Printf("Web server listening on %s", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
