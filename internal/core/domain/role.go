package domain

import "strings"

// Role is the access class bound to an authenticated user.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RoleNurse   Role = "Nurse"
	RoleUnknown Role = "Unknown"
)

// StaffRoles lists every role that can be bound to a credential.
var StaffRoles = []Role{RoleAdmin, RoleDoctor, RoleNurse}

// ParseRole maps a free-form role string to a Role. Matching is
// case-insensitive; anything unrecognised becomes RoleUnknown.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "doctor":
		return RoleDoctor
	case "nurse":
		return RoleNurse
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	return string(r)
}
