package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// tokenClaims is the on-wire JWT payload.
type tokenClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. Verification
// is stateless except for the optional denylist, which holds revoked token
// IDs until their natural expiry.
type TokenService struct {
	secret   []byte
	ttl      time.Duration
	denylist ports.TokenDenylist
}

// NewTokenService builds a TokenService. denylist may be nil, in which case
// revocation is not checked.
func NewTokenService(secret string, ttl time.Duration, denylist ports.TokenDenylist) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, denylist: denylist}
}

// Issue signs a token carrying the identity claims. expires-at is always
// issued-at plus the configured validity window.
func (s *TokenService) Issue(userID, email, role string) (string, error) {
	raw := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := time.Now().UTC()
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        hex.EncodeToString(raw),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes and validates a token string. The error distinguishes
// expired, revoked, and otherwise invalid tokens so callers can log or
// count them separately; all three mean "reject". A denylist lookup failure
// is ErrTokenUnverifiable, which callers should treat as a server-side
// fault rather than a bad credential.
func (s *TokenService) Verify(ctx context.Context, token string) (*ports.TokenClaims, error) {
	var claims tokenClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	if s.denylist != nil && claims.ID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenUnverifiable, err)
		}
		if revoked {
			return nil, domain.ErrTokenRevoked
		}
	}

	out := &ports.TokenClaims{
		TokenID: claims.ID,
		UserID:  claims.UserID,
		Email:   claims.Email,
		Role:    claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
