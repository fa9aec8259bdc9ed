package service

import (
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// AccessController decides allow/deny for section requests against an
// injected permission table. It holds no mutable state.
type AccessController struct {
	table *domain.PermissionTable
}

func NewAccessController(table *domain.PermissionTable) *AccessController {
	return &AccessController{table: table}
}

// Authorize returns nil when the session's role may enter the section, or an
// *domain.AccessDeniedError carrying the role and required roles otherwise.
func (a *AccessController) Authorize(session *domain.Session, section domain.Section) error {
	if a.table.Allows(session.Role, section) {
		return nil
	}
	return &domain.AccessDeniedError{
		Section:  section,
		Role:     session.Role,
		Required: a.table.RequiredRoles(section),
	}
}

// AllowedSections returns the sections the role may enter.
func (a *AccessController) AllowedSections(role domain.Role) []domain.Section {
	return a.table.AllowedSections(role)
}

// RequiredRoles returns the roles that grant access to the section.
func (a *AccessController) RequiredRoles(section domain.Section) []domain.Role {
	return a.table.RequiredRoles(section)
}
