package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/suraksha-labs/suraksha/internal/adapters/web/middleware"
	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
	"github.com/suraksha-labs/suraksha/internal/core/services/auth"
)

// AuthHandler handles login, logout, and registration.
type AuthHandler struct {
	AuthService ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

// HandleLogin validates credentials and sets the session cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), creds)
	if err != nil {
		if errors.Is(err, auth.ErrRateLimitExceeded) {
			http.Error(w, "Too many login attempts", http.StatusTooManyRequests)
			return
		}
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"logged_in"}`))
}

// HandleLogout invalidates the session and clears the cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie("auth_token"); err == nil {
		h.AuthService.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "auth_token",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"logged_out"}`))
}

// HandleRegister provisions a new member account.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, domain.ErrEmptyUsername):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Registration failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

// HandleMe returns the authenticated user's identity.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"points":   user.Points,
		"level":    user.Level,
		"rank":     user.Rank,
	})
}
