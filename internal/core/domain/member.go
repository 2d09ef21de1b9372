package domain

import (
	"errors"
	"time"
)

// MemberStatus represents the standing of a member record.
type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberInactive  MemberStatus = "inactive"
	MemberSuspended MemberStatus = "suspended"
)

// Member record roles are a display attribute of the roster, distinct from
// the auth roles carried by User.
type MemberRole string

const (
	MemberRoleAdmin     MemberRole = "admin"
	MemberRoleManager   MemberRole = "manager"
	MemberRoleMember    MemberRole = "member"
	MemberRoleModerator MemberRole = "moderator"
)

var ErrMemberNotFound = errors.New("member not found")
var ErrMemberExists = errors.New("member with this email already exists")
var ErrForbidden = errors.New("access forbidden")

// Member is a roster entry managed through the member CRUD endpoints.
type Member struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Role       MemberRole   `json:"role"`
	Status     MemberStatus `json:"status"`
	JoinedDate time.Time    `json:"joined_date"`
	Phone      string       `json:"phone,omitempty"`
	Address    string       `json:"address,omitempty"`
	CreatedBy  string       `json:"created_by,omitempty"`
	UpdatedBy  string       `json:"updated_by,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
