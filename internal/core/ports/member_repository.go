package ports

import (
	"context"

	"github.com/slstl/membership-system/internal/core/domain"
)

// MemberRepository defines the persistence contract for roster entries.
type MemberRepository interface {
	FindAll(ctx context.Context) ([]domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}
