package handler

import "github.com/slstl/membership-system/internal/core/domain"

// --- Request / Response types ---

type createMemberRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Role    string `json:"role"    validate:"omitempty,oneof=admin manager member moderator"`
	Status  string `json:"status"  validate:"omitempty,oneof=active inactive suspended"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// updateMemberRequest carries a partial update; absent fields stay unchanged.
type updateMemberRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Role    *string `json:"role"    validate:"omitempty,oneof=admin manager member moderator"`
	Status  *string `json:"status"  validate:"omitempty,oneof=active inactive suspended"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type memberResponse struct {
	Message string         `json:"message"`
	Member  *domain.Member `json:"member"`
}
