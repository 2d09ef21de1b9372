package domain

import "time"

// Audit actions recorded on member writes.
const (
	AuditMemberCreated = "member_created"
	AuditMemberUpdated = "member_updated"
	AuditMemberDeleted = "member_deleted"
)

// AuditEvent records who did what to which member record.
type AuditEvent struct {
	MemberID  string    `json:"member_id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}
