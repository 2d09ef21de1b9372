package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/slstl/membership-system/internal/core/domain"
)

type captureAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *captureAuditRepo) Insert(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *captureAuditRepo) FindByMember(_ context.Context, memberID string) ([]domain.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditEvent
	for _, e := range r.events {
		if e.MemberID == memberID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestDispatcher_StopDrainsBufferedEvents(t *testing.T) {
	repo := &captureAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 10; i++ {
		d.Enqueue(domain.AuditEvent{
			MemberID: "member-1",
			Action:   domain.AuditMemberUpdated,
			ActorID:  fmt.Sprintf("actor-%d", i),
		})
	}
	d.Stop()

	if len(repo.events) != 10 {
		t.Fatalf("expected all 10 events persisted after Stop, got %d", len(repo.events))
	}
}

func TestDispatcher_StopSurvivesServerContextCancel(t *testing.T) {
	repo := &captureAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())
	d.Start(context.Background())

	// Simulate the signal firing while a request is still completing: the
	// server context is cancelled, then the request enqueues its event.
	serverCtx, cancel := context.WithCancel(context.Background())
	cancel()
	<-serverCtx.Done()

	d.Enqueue(domain.AuditEvent{
		MemberID: "member-1",
		Action:   domain.AuditMemberDeleted,
		ActorID:  "actor-1",
	})
	d.Stop()

	if len(repo.events) != 1 {
		t.Fatalf("event enqueued during shutdown drain was not persisted: %+v", repo.events)
	}
}

func TestDispatcher_PerMemberOrdering(t *testing.T) {
	repo := &captureAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	d.Start(context.Background())

	const n = 50
	for i := 0; i < n; i++ {
		d.Enqueue(domain.AuditEvent{
			MemberID: "member-1",
			Action:   domain.AuditMemberUpdated,
			ActorID:  fmt.Sprintf("actor-%d", i),
		})
	}
	d.Stop()

	events, err := repo.FindByMember(context.Background(), "member-1")
	if err != nil {
		t.Fatalf("find by member: %v", err)
	}
	if len(events) != n {
		t.Fatalf("expected %d events, got %d", n, len(events))
	}
	for i, e := range events {
		if e.ActorID != fmt.Sprintf("actor-%d", i) {
			t.Fatalf("event %d out of order: got %s", i, e.ActorID)
		}
	}
}

func TestDispatcher_ShardIndexDeterministic(t *testing.T) {
	d := NewDispatcher(4, &captureAuditRepo{}, zerolog.Nop())

	for _, id := range []string{"member-1", "member-2", "abc", ""} {
		first := d.shardIndex(id)
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shard index out of range for %q: %d", id, first)
		}
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard index for %q not stable: %d then %d", id, first, got)
			}
		}
	}
}
