package domain

// PermissionTable maps roles to the sections they may enter. It is built once
// at startup and injected into the access controller; both directions of the
// relation (allowed sections per role, required roles per section) are derived
// from the same underlying facts so they can never contradict each other.
type PermissionTable struct {
	allowed  map[Role][]Section
	required map[Section][]Role
}

// NewPermissionTable derives a PermissionTable from a role → sections map.
// Roles absent from the map fall back to dashboard-only access.
func NewPermissionTable(allowed map[Role][]Section) *PermissionTable {
	t := &PermissionTable{
		allowed:  make(map[Role][]Section, len(allowed)),
		required: make(map[Section][]Role, len(AllSections)),
	}
	for role, sections := range allowed {
		t.allowed[role] = append([]Section(nil), sections...)
	}
	// Invert the relation in a stable role order.
	for _, role := range StaffRoles {
		for _, sec := range t.allowed[role] {
			t.required[sec] = append(t.required[sec], role)
		}
	}
	return t
}

// DefaultPermissionTable returns the canonical clinic permission matrix.
func DefaultPermissionTable() *PermissionTable {
	return NewPermissionTable(map[Role][]Section{
		RoleAdmin: {
			SectionDashboard, SectionPatients, SectionDoctors, SectionAppointments,
			SectionBilling, SectionPharmacy, SectionMessages, SectionSettings,
			SectionVitals, SectionBeds,
		},
		RoleDoctor: {
			SectionDashboard, SectionPatients, SectionAppointments,
			SectionMessages, SectionVitals,
		},
		RoleNurse: {
			SectionDashboard, SectionPatients, SectionAppointments,
			SectionPharmacy, SectionMessages, SectionVitals, SectionBeds,
		},
	})
}

// Allows reports whether role may enter section.
func (t *PermissionTable) Allows(role Role, section Section) bool {
	for _, sec := range t.AllowedSections(role) {
		if sec == section {
			return true
		}
	}
	return false
}

// AllowedSections returns the sections role may enter. Unrecognised roles get
// minimal access: the dashboard only.
func (t *PermissionTable) AllowedSections(role Role) []Section {
	if sections, ok := t.allowed[role]; ok {
		return sections
	}
	return []Section{SectionDashboard}
}

// RequiredRoles returns the roles that grant access to section, used to phrase
// denial messages.
func (t *PermissionTable) RequiredRoles(section Section) []Role {
	return t.required[section]
}
