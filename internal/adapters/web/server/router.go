package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/suraksha-labs/suraksha/internal/adapters/web/middleware"
)

// SetupRoutes wires the API surface onto a router.
func SetupRoutes(s *Server) http.Handler {
	r := mux.NewRouter()

	// Rate limiters
	loginLimiter := middleware.NewRateLimiter(5, 1*time.Minute) // 5 login attempts per minute
	scanLimiter := middleware.NewRateLimiter(60, 1*time.Minute) // 60 scans per minute

	limitLogin := middleware.RateLimitMiddleware(loginLimiter)
	limitScan := middleware.RateLimitMiddleware(scanLimiter)

	auth := middleware.AuthMiddleware(s.AuthService)
	optionalAuth := middleware.OptionalAuthMiddleware(s.AuthService)
	protect := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	// Public API
	r.Handle("/api/login", limitLogin(http.HandlerFunc(s.AuthHandler.HandleLogin)))
	r.Handle("/api/register", limitLogin(http.HandlerFunc(s.AuthHandler.HandleRegister)))
	r.HandleFunc("/api/logout", s.AuthHandler.HandleLogout)

	// Scans are open to anonymous clients; a valid session attributes points.
	r.Handle("/api/scan", limitScan(optionalAuth(http.HandlerFunc(s.ScanHandler.HandleScan))))
	r.Handle("/api/trust/{bssid}", http.HandlerFunc(s.ScanHandler.HandleTrust))
	r.Handle("/api/leaderboard", http.HandlerFunc(s.GamificationHandler.HandleLeaderboard))
	r.Handle("/api/phishing/check", http.HandlerFunc(s.PhishingHandler.HandleCheckURL))
	r.Handle("/api/securitytests", http.HandlerFunc(s.ProbeHandler.HandleSecurityTests))

	// Protected API
	r.Handle("/api/me", protect(s.AuthHandler.HandleMe))
	r.Handle("/api/profile", protect(s.GamificationHandler.HandleProfile))
	r.Handle("/api/badges", protect(s.GamificationHandler.HandleBadges))
	r.Handle("/api/share", protect(s.GamificationHandler.HandleShare))
	r.Handle("/api/help", protect(s.GamificationHandler.HandleHelp))
	r.Handle("/api/reports/safety", protect(s.ReportHandler.HandleSafetyReport))

	// WebSocket alert feed (protected)
	r.Handle("/ws", protect(s.WSManager.HandleWebSocket))

	// Metrics endpoint (protected - requires authentication)
	r.Handle("/metrics", protect(func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	}))

	return r
}
