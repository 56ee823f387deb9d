package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// fakeAuthService validates exactly one token.
type fakeAuthService struct {
	token string
	user  *domain.User
}

func (f *fakeAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	return f.token, nil
}

func (f *fakeAuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if token == f.token {
		return f.user, nil
	}
	return nil, errors.New("invalid session")
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error { return nil }

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return f.user, nil
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	if user := UserFromContext(r.Context()); user != nil {
		w.Write([]byte(user.Username))
		return
	}
	w.Write([]byte("anonymous"))
}

func TestAuthMiddleware(t *testing.T) {
	svc := &fakeAuthService{
		token: "good-token",
		user:  &domain.User{ID: "u-1", Username: "asha", Role: domain.RoleMember},
	}
	handler := AuthMiddleware(svc)(http.HandlerFunc(echoUser))

	// No token
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	// Bad token clears the cookie
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "stale"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("invalid cookie was not cleared")
	}

	// Valid cookie
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "good-token"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "asha" {
		t.Errorf("valid cookie: status = %d body = %q", rec.Code, rec.Body.String())
	}

	// Bearer header fallback
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("bearer token: status = %d, want 200", rec.Code)
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	svc := &fakeAuthService{
		token: "good-token",
		user:  &domain.User{ID: "u-1", Username: "asha", Role: domain.RoleMember},
	}
	handler := OptionalAuthMiddleware(svc)(http.HandlerFunc(echoUser))

	// Anonymous requests pass through.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scan", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "anonymous" {
		t.Errorf("anonymous: status = %d body = %q", rec.Code, rec.Body.String())
	}

	// Invalid token still passes through, just unattributed.
	req := httptest.NewRequest(http.MethodPost, "/api/scan", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "stale"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "anonymous" {
		t.Errorf("stale token: status = %d body = %q", rec.Code, rec.Body.String())
	}

	// Valid token attributes the request.
	req = httptest.NewRequest(http.MethodPost, "/api/scan", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "good-token"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Body.String() != "asha" {
		t.Errorf("valid token: body = %q, want asha", rec.Body.String())
	}
}

func TestRoleMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	admin := RoleMiddleware(domain.RoleAdmin)(next)

	// Member is forbidden
	member := &domain.User{ID: "u-1", Username: "asha", Role: domain.RoleMember}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), UserContextKey, member))
	rec := httptest.NewRecorder()
	admin.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("member hitting admin route: status = %d, want 403", rec.Code)
	}

	// Admin passes
	root := &domain.User{ID: "u-2", Username: "root", Role: domain.RoleAdmin}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), UserContextKey, root))
	rec = httptest.NewRecorder()
	admin.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", rec.Code)
	}
}
