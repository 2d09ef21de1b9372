package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/slstl/membership-system/internal/api/middleware"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: user_id and role must
// be non-empty (presence proves the middleware ran).
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// ctxToken returns the token ID and expiry attached by the Auth middleware,
// used by logout to revoke the presented token.
func ctxToken(c echo.Context) (tokenID string, expiresAt time.Time) {
	tokenID, _ = c.Get(middleware.CtxTokenID).(string)
	expiresAt, _ = c.Get(middleware.CtxTokenExp).(time.Time)
	return tokenID, expiresAt
}
