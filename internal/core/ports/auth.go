package ports

import (
	"context"

	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// AuthService defines the business logic for authentication. It supplies
// the core with a verified user identity or none; anonymous observations
// are scored but never attributed to gamification.
type AuthService interface {
	// Login validates credentials and returns a session token.
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	// ValidateToken checks if a token is valid and returns the associated user.
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
	// Logout invalidates a session token.
	Logout(ctx context.Context, token string) error
	// Register provisions a new member account with a hashed password.
	Register(ctx context.Context, username, password string) (*domain.User, error)
}
