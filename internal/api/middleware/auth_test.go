package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/ports"
)

type stubVerifier struct {
	claims *ports.TokenClaims
	err    error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*ports.TokenClaims, error) {
	return v.claims, v.err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	exp := time.Now().Add(time.Hour).UTC()
	verifier := &stubVerifier{claims: &ports.TokenClaims{
		TokenID:   "tok-1",
		UserID:    "user-1",
		Email:     "alice@example.com",
		Role:      domain.RoleAdmin,
		ExpiresAt: exp,
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != "user-1" {
			t.Fatalf("user_id not set")
		}
		if c.Get(CtxEmail) != "alice@example.com" {
			t.Fatalf("email not set")
		}
		if c.Get(CtxRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		if c.Get(CtxTokenID) != "tok-1" {
			t.Fatalf("token_id not set")
		}
		if got, _ := c.Get(CtxTokenExp).(time.Time); !got.Equal(exp) {
			t.Fatalf("token_exp not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	for _, verifyErr := range []error{
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
		domain.ErrTokenRevoked,
	} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(&stubVerifier{err: verifyErr})(func(c echo.Context) error {
			t.Fatalf("should not reach next for %v", verifyErr)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", verifyErr, rec.Code)
		}
	}
}

func TestAuthMiddleware_DenylistUnavailable(t *testing.T) {
	e := echo.New()
	verifyErr := fmt.Errorf("%w: connection refused", domain.ErrTokenUnverifiable)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{err: verifyErr})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrTokenUnverifiable) {
		t.Fatalf("expected the store failure to propagate, got %v", err)
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("store failure must not be rendered as an auth error: %v", he)
	}
}

func TestRejectReason(t *testing.T) {
	if got := rejectReason(domain.ErrTokenExpired); got != "expired" {
		t.Fatalf("expected expired, got %s", got)
	}
	if got := rejectReason(domain.ErrTokenRevoked); got != "revoked" {
		t.Fatalf("expected revoked, got %s", got)
	}
	if got := rejectReason(fmt.Errorf("%w: down", domain.ErrTokenUnverifiable)); got != "unavailable" {
		t.Fatalf("expected unavailable, got %s", got)
	}
	if got := rejectReason(errors.New("anything else")); got != "invalid" {
		t.Fatalf("expected invalid, got %s", got)
	}
}
