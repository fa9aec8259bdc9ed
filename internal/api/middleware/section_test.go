package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

type stubNavigator struct {
	access ports.AccessController
	byID   map[string]*domain.Session
}

func (n *stubNavigator) Current(_ context.Context, sessionID string) (*ports.NavigationView, error) {
	session, ok := n.byID[sessionID]
	if !ok {
		return nil, domain.ErrSessionRevoked
	}
	return &ports.NavigationView{
		CurrentSection: session.CurrentSection,
		Allowed:        n.access.AllowedSections(session.Role),
	}, nil
}

func (n *stubNavigator) Navigate(_ context.Context, sessionID string, section domain.Section) (*ports.NavigationView, error) {
	session, ok := n.byID[sessionID]
	if !ok {
		return nil, domain.ErrSessionRevoked
	}
	if err := n.access.Authorize(session, section); err != nil {
		return nil, err
	}
	session.CurrentSection = section
	return &ports.NavigationView{
		CurrentSection: section,
		Allowed:        n.access.AllowedSections(session.Role),
	}, nil
}

type allowAllAccess struct{}

func (allowAllAccess) Authorize(*domain.Session, domain.Section) error { return nil }
func (allowAllAccess) AllowedSections(domain.Role) []domain.Section {
	return domain.AllSections
}
func (allowAllAccess) RequiredRoles(domain.Section) []domain.Role {
	return domain.StaffRoles
}

type denyAllAccess struct{}

func (denyAllAccess) Authorize(session *domain.Session, section domain.Section) error {
	return &domain.AccessDeniedError{
		Section:  section,
		Role:     session.Role,
		Required: []domain.Role{domain.RoleAdmin},
	}
}
func (denyAllAccess) AllowedSections(domain.Role) []domain.Section {
	return []domain.Section{domain.SectionDashboard}
}
func (denyAllAccess) RequiredRoles(domain.Section) []domain.Role {
	return []domain.Role{domain.RoleAdmin}
}

func TestSectionMiddleware_AllowedMovesSession(t *testing.T) {
	e := echo.New()
	session := domain.NewSession("sess-1", "nurse1", domain.RoleNurse)
	nav := &stubNavigator{
		access: allowAllAccess{},
		byID:   map[string]*domain.Session{"sess-1": session},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionKey, session)

	called := false
	mw := Section(nav, domain.SectionPatients)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if session.CurrentSection != domain.SectionPatients {
		t.Fatalf("session section = %s, want patients", session.CurrentSection)
	}
}

func TestSectionMiddleware_DeniedReturnsAccessError(t *testing.T) {
	e := echo.New()
	session := domain.NewSession("sess-1", "nurse1", domain.RoleNurse)
	nav := &stubNavigator{
		access: denyAllAccess{},
		byID:   map[string]*domain.Session{"sess-1": session},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionKey, session)

	mw := Section(nav, domain.SectionBilling)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var denied *domain.AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected *AccessDeniedError, got %v", err)
	}
	if denied.Section != domain.SectionBilling || denied.Role != domain.RoleNurse {
		t.Fatalf("denial context wrong: %+v", denied)
	}
	if session.CurrentSection != domain.SectionDashboard {
		t.Fatalf("denial must not move the session, got %s", session.CurrentSection)
	}
}

func TestSectionMiddleware_MissingSession(t *testing.T) {
	e := echo.New()
	nav := &stubNavigator{access: allowAllAccess{}, byID: map[string]*domain.Session{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Section(nav, domain.SectionPatients)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
