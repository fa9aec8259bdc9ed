// Package memory provides the in-process stores backing every repository
// port. All data is seeded at startup and lost on shutdown; persistence is
// deliberately out of scope for this system.
package memory

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// CredentialStore is the static login table. It is populated once and never
// mutated, so reads need no locking beyond the initial map build.
type CredentialStore struct {
	byUsername map[string]domain.Credential
}

var _ ports.CredentialRepository = (*CredentialStore)(nil)

// NewCredentialStore builds the store from a seed list.
func NewCredentialStore(seed []domain.Credential) *CredentialStore {
	byUsername := make(map[string]domain.Credential, len(seed))
	for _, c := range seed {
		byUsername[c.Username] = c
	}
	return &CredentialStore{byUsername: byUsername}
}

// DefaultCredentials is the demo login seed.
func DefaultCredentials() []domain.Credential {
	return []domain.Credential{
		{Username: "admin", Secret: "1234", Role: domain.RoleAdmin},
		{Username: "nurse1", Secret: "2222", Role: domain.RoleNurse},
		{Username: "doctor1", Secret: "3333", Role: domain.RoleDoctor},
	}
}

// FindByUsername is an exact, case-sensitive lookup.
func (s *CredentialStore) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	cred, ok := s.byUsername[username]
	if !ok {
		return nil, domain.ErrUnknownUser
	}
	return &cred, nil
}
