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

	"github.com/upsaclinic/clinic-admin/internal/api/middleware"
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, secret string) (*domain.Session, string, error)
	logoutFn func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, secret string) (*domain.Session, string, error) {
	return s.loginFn(ctx, username, secret)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) Resolve(_ context.Context, _ string) (*domain.Session, error) {
	return nil, domain.ErrSessionRevoked
}

type stubAccessController struct{}

func (stubAccessController) Authorize(*domain.Session, domain.Section) error { return nil }
func (stubAccessController) AllowedSections(role domain.Role) []domain.Section {
	if role == domain.RoleAdmin {
		return domain.AllSections
	}
	return []domain.Section{domain.SectionDashboard}
}
func (stubAccessController) RequiredRoles(domain.Section) []domain.Role {
	return []domain.Role{domain.RoleAdmin}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, secret string) (*domain.Session, string, error) {
			if username != "admin" || secret != "1234" {
				t.Fatalf("unexpected args: %s %s", username, secret)
			}
			return domain.NewSession("sess-1", "admin", domain.RoleAdmin), "token123", nil
		},
	}
	handler := NewAuthHandler(stub, stubAccessController{})

	body := strings.NewReader(`{"username":"admin","password":"1234"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["username"] != "admin" || resp["role"] != "Admin" {
		t.Fatalf("unexpected identity payload: %+v", resp)
	}
	if resp["current_section"] != "dashboard" {
		t.Fatalf("expected dashboard as landing section, got %v", resp["current_section"])
	}
	allowed, ok := resp["allowed_sections"].([]any)
	if !ok || len(allowed) != len(domain.AllSections) {
		t.Fatalf("expected full section list for admin, got %v", resp["allowed_sections"])
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*domain.Session, string, error) {
			return nil, "", domain.ErrWrongPassword
		},
	}
	handler := NewAuthHandler(stub, stubAccessController{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*domain.Session, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub, stubAccessController{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	loggedOut := ""
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, sessionID string) error {
			loggedOut = sessionID
			return nil
		},
	}
	handler := NewAuthHandler(stub, stubAccessController{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, domain.NewSession("sess-1", "admin", domain.RoleAdmin))

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if loggedOut != "sess-1" {
		t.Fatalf("logout called with %q, want sess-1", loggedOut)
	}
}

func TestAuthHandler_Logout_NoSession(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, _ string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub, stubAccessController{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Logout(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
