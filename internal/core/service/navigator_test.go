package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

func newTestNavigator(t *testing.T, role domain.Role) (*Navigator, *stubSessionRepo, string) {
	t.Helper()
	sessions := newStubSessionRepo()
	session := domain.NewSession("sess-nav", "user", role)
	if err := sessions.Save(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	nav := NewNavigator(sessions, NewAccessController(domain.DefaultPermissionTable()), zerolog.Nop())
	return nav, sessions, session.ID
}

func TestNavigator_AllowedTransition(t *testing.T) {
	nav, sessions, sid := newTestNavigator(t, domain.RoleDoctor)

	view, err := nav.Navigate(context.Background(), sid, domain.SectionVitals)
	if err != nil {
		t.Fatalf("navigate failed: %v", err)
	}
	if view.CurrentSection != domain.SectionVitals {
		t.Fatalf("current = %s, want vitals", view.CurrentSection)
	}

	stored, err := sessions.Find(context.Background(), sid)
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if stored.CurrentSection != domain.SectionVitals {
		t.Fatalf("stored section = %s, want vitals", stored.CurrentSection)
	}
}

func TestNavigator_DeniedTransitionLeavesStateUnchanged(t *testing.T) {
	nav, sessions, sid := newTestNavigator(t, domain.RoleNurse)

	if _, err := nav.Navigate(context.Background(), sid, domain.SectionPatients); err != nil {
		t.Fatalf("navigate to patients failed: %v", err)
	}

	_, err := nav.Navigate(context.Background(), sid, domain.SectionBilling)
	var denied *domain.AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected *AccessDeniedError, got %v", err)
	}

	stored, err := sessions.Find(context.Background(), sid)
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if stored.CurrentSection != domain.SectionPatients {
		t.Fatalf("denied navigation moved the session to %s", stored.CurrentSection)
	}

	view, err := nav.Current(context.Background(), sid)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if view.CurrentSection != domain.SectionPatients {
		t.Fatalf("current view = %s, want patients", view.CurrentSection)
	}
}

func TestNavigator_RevokedSession(t *testing.T) {
	nav, sessions, sid := newTestNavigator(t, domain.RoleAdmin)

	if err := sessions.Delete(context.Background(), sid); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	if _, err := nav.Navigate(context.Background(), sid, domain.SectionPatients); !errors.Is(err, domain.ErrSessionRevoked) {
		t.Fatalf("expected ErrSessionRevoked, got %v", err)
	}
	if _, err := nav.Current(context.Background(), sid); !errors.Is(err, domain.ErrSessionRevoked) {
		t.Fatalf("expected ErrSessionRevoked from Current, got %v", err)
	}
}

func TestNavigator_ViewListsAllowedSections(t *testing.T) {
	nav, _, sid := newTestNavigator(t, domain.RoleDoctor)

	view, err := nav.Current(context.Background(), sid)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if len(view.Allowed) != 5 {
		t.Fatalf("doctor allowed sections = %v, want 5 entries", view.Allowed)
	}
	for _, sec := range view.Allowed {
		if sec == domain.SectionBilling || sec == domain.SectionSettings {
			t.Fatalf("doctor allowed set must not contain %s", sec)
		}
	}
}
