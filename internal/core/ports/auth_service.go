package ports

import (
	"context"
	"time"

	"github.com/slstl/membership-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
