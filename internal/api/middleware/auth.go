package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/slstl/membership-system/internal/api/metrics"
	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxEmail    = "email"
	CtxRole     = "role"
	CtxTokenID  = "token_id"
	CtxTokenExp = "token_exp"
)

// Auth validates the bearer token and injects its claims into the echo
// context. Expired, revoked, and malformed tokens are all rejected with 401;
// the reason is only distinguished in logs and metrics.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
				if errors.Is(err, domain.ErrTokenUnverifiable) {
					// Revocation store unreachable: a server fault, not a
					// bad credential. Fail closed with a 500, not a 401.
					return err
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxTokenID, claims.TokenID)
			c.Set(CtxTokenExp, claims.ExpiresAt)

			return next(c)
		}
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrTokenUnverifiable):
		return "unavailable"
	default:
		return "invalid"
	}
}
