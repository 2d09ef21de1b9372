package ports

import (
	"context"

	"github.com/slstl/membership-system/internal/core/domain"
)

// AuditSink accepts audit events for asynchronous persistence. Enqueue must
// not block the caller beyond the sink's internal buffering.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
	FindByMember(ctx context.Context, memberID string) ([]domain.AuditEvent, error)
}
