package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// Navigator owns the per-session navigation state. Every transition passes
// through the access controller; a denied request leaves the current section
// untouched and returns the denial to the caller.
type Navigator struct {
	sessions ports.SessionRepository
	access   ports.AccessController
	log      zerolog.Logger
}

func NewNavigator(sessions ports.SessionRepository, access ports.AccessController, log zerolog.Logger) *Navigator {
	return &Navigator{sessions: sessions, access: access, log: log}
}

// Current returns the session's current section and its allowed set.
func (n *Navigator) Current(ctx context.Context, sessionID string) (*ports.NavigationView, error) {
	session, err := n.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return n.view(session), nil
}

// Navigate requests a transition to section.
func (n *Navigator) Navigate(ctx context.Context, sessionID string, section domain.Section) (*ports.NavigationView, error) {
	session, err := n.sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := n.access.Authorize(session, section); err != nil {
		n.log.Warn().
			Str("username", session.Username).
			Str("role", session.Role.String()).
			Str("section", section.String()).
			Msg("navigation denied")
		return nil, err
	}

	if session.CurrentSection != section {
		if err := n.sessions.SetSection(ctx, sessionID, section); err != nil {
			return nil, err
		}
		session.CurrentSection = section
	}

	return n.view(session), nil
}

func (n *Navigator) view(session *domain.Session) *ports.NavigationView {
	return &ports.NavigationView{
		CurrentSection: session.CurrentSection,
		Allowed:        n.access.AllowedSections(session.Role),
	}
}
