package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/slstl/membership-system/internal/api/metrics"
	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/ports"
)

type MemberHandler struct {
	memberService ports.MemberService
}

func NewMemberHandler(memberService ports.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// List returns all members, newest first.
//
// @Summary      List members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Member
// @Failure      401  {object}  map[string]string
// @Router       /members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.memberService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// Get returns a single member by ID.
//
// @Summary      Get member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  domain.Member
// @Failure      404  {object}  map[string]string
// @Router       /members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.memberService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Create adds a member to the roster. Admin and manager only.
//
// @Summary      Create member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMemberRequest  true  "Member details"
// @Success      201   {object}  memberResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	member, err := h.memberService.Create(c.Request().Context(), actorID, ports.CreateMemberInput{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Status:  req.Status,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	metrics.MemberWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, memberResponse{
		Message: "Member created successfully",
		Member:  member,
	})
}

// Update applies a partial update to a member. Admin and manager only.
//
// @Summary      Update member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Member ID"
// @Param        body  body      updateMemberRequest  true  "Fields to change"
// @Success      200   {object}  memberResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	member, err := h.memberService.Update(c.Request().Context(), actorID, c.Param("id"), ports.UpdateMemberInput{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Status:  req.Status,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	metrics.MemberWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, memberResponse{
		Message: "Member updated successfully",
		Member:  member,
	})
}

// Audit returns a member's audit trail, oldest first. Admin and manager only.
//
// @Summary      Member audit trail
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member ID"
// @Success      200  {array}   domain.AuditEvent
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /members/{id}/audit [get]
func (h *MemberHandler) Audit(c echo.Context) error {
	events, err := h.memberService.Audit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.AuditEvent{}
	}
	return c.JSON(http.StatusOK, events)
}

// Delete removes a member from the roster. Admin only.
//
// @Summary      Delete member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.memberService.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}

	metrics.MemberWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Member deleted successfully"})
}
