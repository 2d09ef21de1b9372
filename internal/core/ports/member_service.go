package ports

import (
	"context"

	"github.com/slstl/membership-system/internal/core/domain"
)

// CreateMemberInput carries the fields accepted when creating a roster entry.
type CreateMemberInput struct {
	Name    string
	Email   string
	Role    string
	Status  string
	Phone   string
	Address string
}

// UpdateMemberInput carries a partial update: nil fields are left unchanged.
type UpdateMemberInput struct {
	Name    *string
	Email   *string
	Role    *string
	Status  *string
	Phone   *string
	Address *string
}

type MemberService interface {
	List(ctx context.Context) ([]domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, actorID string, in CreateMemberInput) (*domain.Member, error)
	Update(ctx context.Context, actorID, id string, in UpdateMemberInput) (*domain.Member, error)
	Delete(ctx context.Context, actorID, id string) error
	Audit(ctx context.Context, id string) ([]domain.AuditEvent, error)
}
