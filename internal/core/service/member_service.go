package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/ports"
)

type memberService struct {
	repo   ports.MemberRepository
	audit  ports.AuditSink
	trail  ports.AuditRepository
	logger zerolog.Logger
}

// NewMemberService returns a MemberService backed by repo. Every write is
// stamped with the acting user and mirrored to the audit sink; trail serves
// the per-member audit history reads.
func NewMemberService(repo ports.MemberRepository, audit ports.AuditSink, trail ports.AuditRepository, logger zerolog.Logger) ports.MemberService {
	return &memberService{repo: repo, audit: audit, trail: trail, logger: logger}
}

func (s *memberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.repo.FindAll(ctx)
}

func (s *memberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *memberService) Create(ctx context.Context, actorID string, in ports.CreateMemberInput) (*domain.Member, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrMissingFields
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrMemberExists
	} else if !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	member := &domain.Member{
		Name:       in.Name,
		Email:      email,
		Role:       domain.MemberRole(in.Role),
		Status:     domain.MemberStatus(in.Status),
		JoinedDate: now,
		Phone:      in.Phone,
		Address:    in.Address,
		CreatedBy:  actorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if member.Role == "" {
		member.Role = domain.MemberRoleMember
	}
	if member.Status == "" {
		member.Status = domain.MemberActive
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.AuditEvent{
		MemberID:  created.ID,
		Action:    domain.AuditMemberCreated,
		ActorID:   actorID,
		Timestamp: now,
	})
	s.logger.Info().Str("member_id", created.ID).Str("actor_id", actorID).Msg("member created")
	return created, nil
}

func (s *memberService) Update(ctx context.Context, actorID, id string, in ports.UpdateMemberInput) (*domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != member.Email {
			if _, err := s.repo.FindByEmail(ctx, email); err == nil {
				return nil, domain.ErrMemberExists
			} else if !errors.Is(err, domain.ErrMemberNotFound) {
				return nil, err
			}
			member.Email = email
		}
	}
	if in.Name != nil {
		member.Name = *in.Name
	}
	if in.Role != nil {
		member.Role = domain.MemberRole(*in.Role)
	}
	if in.Status != nil {
		member.Status = domain.MemberStatus(*in.Status)
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Address != nil {
		member.Address = *in.Address
	}

	member.UpdatedBy = actorID
	member.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.AuditEvent{
		MemberID:  updated.ID,
		Action:    domain.AuditMemberUpdated,
		ActorID:   actorID,
		Timestamp: member.UpdatedAt,
	})
	return updated, nil
}

// Audit returns the member's audit trail in chronological order. Unknown
// member IDs are rejected before the trail lookup.
func (s *memberService) Audit(ctx context.Context, id string) ([]domain.AuditEvent, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.trail.FindByMember(ctx, id)
}

func (s *memberService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Enqueue(domain.AuditEvent{
		MemberID:  id,
		Action:    domain.AuditMemberDeleted,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("member_id", id).Str("actor_id", actorID).Msg("member deleted")
	return nil
}
