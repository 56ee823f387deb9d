package domain

import (
	"errors"
	"time"
)

// Role defines the authorization level of a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

var (
	ErrInvalidRole   = errors.New("invalid user role")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrUserNotFound  = errors.New("user not found")
)

// IsValid checks if the role is a recognized system role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// User represents a registered participant. Points are monotonically
// non-decreasing; Level is a pure function of Points; Rank is assigned by
// the population-wide recompute pass and is a dense permutation 1..N.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose hash in JSON
	Role         Role      `json:"role"`
	Points       int       `json:"points"`
	Level        int       `json:"level"`
	Rank         int       `json:"rank"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}

// NewUser creates a new validated user instance at level 1 with no points.
func NewUser(id, username string, role Role) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		ID:        id,
		Username:  username,
		Role:      role,
		Level:     1,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// UpdateLastLogin refreshes the last login timestamp.
func (u *User) UpdateLastLogin() {
	u.LastLogin = time.Now().UTC()
}

// Validate ensures the user entity is in a valid state.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

// Credentials represents the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
