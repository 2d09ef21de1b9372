package ports

import (
	"context"
	"time"
)

// TokenClaims is the decoded payload of a bearer token.
type TokenClaims struct {
	TokenID   string
	UserID    string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer creates signed, time-limited bearer tokens.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// TokenVerifier validates a token string and returns its claims. Bad tokens
// fail with domain.ErrTokenExpired, domain.ErrTokenRevoked, or
// domain.ErrTokenInvalid; domain.ErrTokenUnverifiable means the revocation
// store could not be consulted.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenDenylist holds revoked token IDs until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
