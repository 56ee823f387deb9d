package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
	"github.com/suraksha-labs/suraksha/internal/core/ports"
)

type contextKey string

const UserContextKey contextKey = "user"

// tokenFromRequest pulls the session token from the auth cookie, falling
// back to a Bearer header for API clients.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("auth_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware ensures the request has a valid session.
func AuthMiddleware(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := authService.ValidateToken(r.Context(), token)
			if err != nil {
				// Clear cookie if invalid
				http.SetCookie(w, &http.Cookie{
					Name:   "auth_token",
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware attaches the user to the context when a valid
// session is present and lets the request through anonymously otherwise.
// Anonymous observations are scored but never attributed to gamification.
func OptionalAuthMiddleware(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := tokenFromRequest(r); token != "" {
				if user, err := authService.ValidateToken(r.Context(), token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the authenticated user, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserContextKey).(*domain.User)
	return user
}

// RoleMiddleware checks if the user has the required role.
func RoleMiddleware(requiredRole domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if requiredRole == domain.RoleAdmin && user.Role != domain.RoleAdmin {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
