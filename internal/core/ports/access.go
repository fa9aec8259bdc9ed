package ports

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// AccessController decides whether a session may enter a section. Authorize is
// a pure function of (role, section): no hidden state, no side effects, and
// identical inputs always yield identical results.
type AccessController interface {
	// Authorize returns nil on allow, or *domain.AccessDeniedError on deny.
	Authorize(session *domain.Session, section domain.Section) error
	AllowedSections(role domain.Role) []domain.Section
	RequiredRoles(section domain.Section) []domain.Role
}

// NavigationView is the navigation state returned to the caller.
type NavigationView struct {
	CurrentSection domain.Section   `json:"current_section"`
	Allowed        []domain.Section `json:"allowed_sections"`
}

// Navigator tracks the single current section per session. Transitions pass
// through the access controller; a denied request leaves the state unchanged.
type Navigator interface {
	Current(ctx context.Context, sessionID string) (*NavigationView, error)
	Navigate(ctx context.Context, sessionID string, section domain.Section) (*NavigationView, error)
}
