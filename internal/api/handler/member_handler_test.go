package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/slstl/membership-system/internal/api/middleware"
	"github.com/slstl/membership-system/internal/core/domain"
	"github.com/slstl/membership-system/internal/core/ports"
)

type stubMemberService struct {
	listFn   func(ctx context.Context) ([]domain.Member, error)
	getFn    func(ctx context.Context, id string) (*domain.Member, error)
	createFn func(ctx context.Context, actorID string, in ports.CreateMemberInput) (*domain.Member, error)
	updateFn func(ctx context.Context, actorID, id string, in ports.UpdateMemberInput) (*domain.Member, error)
	deleteFn func(ctx context.Context, actorID, id string) error
	auditFn  func(ctx context.Context, id string) ([]domain.AuditEvent, error)
}

func (s *stubMemberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.listFn(ctx)
}

func (s *stubMemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.getFn(ctx, id)
}

func (s *stubMemberService) Create(ctx context.Context, actorID string, in ports.CreateMemberInput) (*domain.Member, error) {
	return s.createFn(ctx, actorID, in)
}

func (s *stubMemberService) Update(ctx context.Context, actorID, id string, in ports.UpdateMemberInput) (*domain.Member, error) {
	return s.updateFn(ctx, actorID, id, in)
}

func (s *stubMemberService) Delete(ctx context.Context, actorID, id string) error {
	return s.deleteFn(ctx, actorID, id)
}

func (s *stubMemberService) Audit(ctx context.Context, id string) ([]domain.AuditEvent, error) {
	return s.auditFn(ctx, id)
}

func newMemberContext(e *echo.Echo, method, path string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "actor-1")
	c.Set(middleware.CtxRole, domain.RoleAdmin)
	return c, rec
}

func TestMemberHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubMemberService{
		listFn: func(ctx context.Context) ([]domain.Member, error) {
			return []domain.Member{
				{ID: "m1", Name: "John Doe", Email: "john@slstl.lk"},
				{ID: "m2", Name: "Jane Smith", Email: "jane@slstl.lk"},
			}, nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(e, http.MethodGet, "/members", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var members []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &members); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}

func TestMemberHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubMemberService{
		getFn: func(ctx context.Context, id string) (*domain.Member, error) {
			return nil, domain.ErrMemberNotFound
		},
	}
	handler := NewMemberHandler(stub)

	c, _ := newMemberContext(e, http.MethodGet, "/members/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound to propagate, got %v", err)
	}
}

func TestMemberHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubMemberService{
		createFn: func(ctx context.Context, actorID string, in ports.CreateMemberInput) (*domain.Member, error) {
			if actorID != "actor-1" {
				t.Fatalf("unexpected actor: %s", actorID)
			}
			if in.Name != "John Doe" || in.Email != "john@slstl.lk" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Member{ID: "m1", Name: in.Name, Email: in.Email, Role: domain.MemberRoleMember, Status: domain.MemberActive}, nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(e, http.MethodPost, "/members", `{"name":"John Doe","email":"john@slstl.lk"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Member created successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMemberHandler_Create_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubMemberService{
		createFn: func(ctx context.Context, actorID string, in ports.CreateMemberInput) (*domain.Member, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(e, http.MethodPost, "/members", `{"name":"No Email","email":"not-an-email"}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "email") {
		t.Fatalf("expected email validation message, got: %s", rec.Body.String())
	}
}

func TestMemberHandler_Update_Partial(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubMemberService{
		updateFn: func(ctx context.Context, actorID, id string, in ports.UpdateMemberInput) (*domain.Member, error) {
			if id != "m1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.Status == nil || *in.Status != "inactive" {
				t.Fatalf("expected status update, got %+v", in)
			}
			if in.Name != nil || in.Email != nil {
				t.Fatalf("unexpected fields set: %+v", in)
			}
			return &domain.Member{ID: id, Status: domain.MemberInactive}, nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(e, http.MethodPut, "/members/m1", `{"status":"inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMemberHandler_Delete(t *testing.T) {
	e := echo.New()
	stub := &stubMemberService{
		deleteFn: func(ctx context.Context, actorID, id string) error {
			if actorID != "actor-1" || id != "m1" {
				t.Fatalf("unexpected args: %s %s", actorID, id)
			}
			return nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(e, http.MethodDelete, "/members/m1", "")
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Member deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMemberHandler_Audit(t *testing.T) {
	e := echo.New()
	stub := &stubMemberService{
		auditFn: func(ctx context.Context, id string) ([]domain.AuditEvent, error) {
			if id != "m1" {
				return nil, domain.ErrMemberNotFound
			}
			return []domain.AuditEvent{
				{MemberID: "m1", Action: domain.AuditMemberCreated, ActorID: "actor-1"},
				{MemberID: "m1", Action: domain.AuditMemberUpdated, ActorID: "actor-2"},
			}, nil
		},
	}
	handler := NewMemberHandler(stub)

	c, rec := newMemberContext(e, http.MethodGet, "/members/m1/audit", "")
	c.SetParamNames("id")
	c.SetParamValues("m1")
	if err := handler.Audit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var events []domain.AuditEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(events) != 2 || events[0].Action != domain.AuditMemberCreated {
		t.Fatalf("unexpected trail: %+v", events)
	}
}

func TestMemberHandler_Audit_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubMemberService{
		auditFn: func(ctx context.Context, id string) ([]domain.AuditEvent, error) {
			return nil, domain.ErrMemberNotFound
		},
	}
	handler := NewMemberHandler(stub)

	c, _ := newMemberContext(e, http.MethodGet, "/members/nope/audit", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.Audit(c); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound to propagate, got %v", err)
	}
}
