package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

type stubRoleService struct {
	roles     []domain.Role
	role      *domain.Role
	err       error
	gotName   string
	gotAccent string
}

func (s *stubRoleService) List(context.Context) ([]domain.Role, error) {
	return s.roles, s.err
}

func (s *stubRoleService) Create(_ context.Context, name, accent string) (*domain.Role, error) {
	s.gotName = name
	s.gotAccent = accent
	return s.role, s.err
}

func (s *stubRoleService) SeedDefaults(context.Context) error { return s.err }

func TestRoleHandler_List(t *testing.T) {
	svc := &stubRoleService{roles: domain.DefaultRoles()}
	h := NewRoleHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var roles []domain.Role
	if err := json.Unmarshal(rec.Body.Bytes(), &roles); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(roles) != len(domain.DefaultRoles()) {
		t.Fatalf("expected %d roles, got %d", len(domain.DefaultRoles()), len(roles))
	}
}

func TestRoleHandler_List_EmptyIsJSONArray(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	c, rec := newTestContext(t, http.MethodGet, "/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("nil registry must render as [], got %q", got)
	}
}

func TestRoleHandler_Create(t *testing.T) {
	svc := &stubRoleService{role: &domain.Role{Name: "Sales", Slug: "sales", Accent: "#f97316", Assignable: true}}
	h := NewRoleHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/roles", `{"name":"Sales","accent":"#f97316"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotName != "Sales" || svc.gotAccent != "#f97316" {
		t.Fatalf("input not passed through: %q %q", svc.gotName, svc.gotAccent)
	}
}

func TestRoleHandler_Create_MissingName(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	c, _ := newTestContext(t, http.MethodPost, "/roles", `{"accent":"#f97316"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoleHandler_Create_DuplicatePropagates(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{err: domain.ErrRoleExists})

	c, _ := newTestContext(t, http.MethodPost, "/roles", `{"name":"HR"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrRoleExists) {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
}
