package domain

import (
	"errors"
	"time"
)

// Auth roles form a closed set. RoleMember is the default for
// self-registered accounts.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

var ErrMissingFields = errors.New("all fields are required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

var ErrTokenInvalid = errors.New("token invalid")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenRevoked = errors.New("token revoked")

// ErrTokenUnverifiable means the revocation store could not be reached, not
// that the token itself is bad. Verification fails closed but the failure is
// reported as a server error, not an auth error.
var ErrTokenUnverifiable = errors.New("token verification unavailable")

// ValidRole reports whether role belongs to the closed auth role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// User models an authenticated principal. PasswordHash never leaves the
// server: it is excluded from every JSON representation.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
