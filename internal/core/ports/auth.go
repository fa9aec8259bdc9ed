package ports

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// CredentialRepository looks up login credentials. The store is read-only for
// the lifetime of the process.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
}

// SessionRepository holds the live sessions. A session absent from the store
// has been logged out (or never existed); there is no separate revoked state.
type SessionRepository interface {
	Save(ctx context.Context, s *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	// SetSection records a navigation transition for the session.
	SetSection(ctx context.Context, id string, section domain.Section) error
	Delete(ctx context.Context, id string) error
	ActiveCount(ctx context.Context) int
}

// AuthService authenticates users and manages session lifecycle.
type AuthService interface {
	// Login validates the credentials and on success returns the new session
	// together with a signed bearer token for it.
	Login(ctx context.Context, username, secret string) (*domain.Session, string, error)
	// Logout unconditionally ends the session. Logging out a session that is
	// already gone is not an error.
	Logout(ctx context.Context, sessionID string) error
	// Resolve returns the live session for an ID, or ErrSessionRevoked if it
	// has been logged out.
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}
