package ports

import (
	"context"

	"github.com/slstl/membership-system/internal/core/domain"
)

// UserRepository defines the persistence contract for identities.
// FindByEmail matches case-insensitively; Create must fail with
// domain.ErrUserExists when the email is already taken (the store's unique
// index is the authoritative guarantee, not a check-then-act in callers).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
