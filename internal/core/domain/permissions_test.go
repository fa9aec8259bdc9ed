package domain

import "testing"

func TestDefaultPermissionTable_Matrix(t *testing.T) {
	table := DefaultPermissionTable()

	allowed := map[Role]map[Section]bool{
		RoleAdmin: {
			SectionDashboard: true, SectionPatients: true, SectionDoctors: true,
			SectionAppointments: true, SectionBilling: true, SectionPharmacy: true,
			SectionMessages: true, SectionSettings: true, SectionVitals: true,
			SectionBeds: true,
		},
		RoleDoctor: {
			SectionDashboard: true, SectionPatients: true, SectionAppointments: true,
			SectionMessages: true, SectionVitals: true,
		},
		RoleNurse: {
			SectionDashboard: true, SectionPatients: true, SectionAppointments: true,
			SectionPharmacy: true, SectionMessages: true, SectionVitals: true,
			SectionBeds: true,
		},
	}

	for _, role := range StaffRoles {
		for _, sec := range AllSections {
			want := allowed[role][sec]
			if got := table.Allows(role, sec); got != want {
				t.Errorf("Allows(%s, %s) = %v, want %v", role, sec, got, want)
			}
		}
	}
}

// The allowed and required maps are two views of the same relation; they must
// never disagree.
func TestPermissionTable_DerivedConsistency(t *testing.T) {
	table := DefaultPermissionTable()

	for _, role := range StaffRoles {
		for _, sec := range AllSections {
			inRequired := false
			for _, r := range table.RequiredRoles(sec) {
				if r == role {
					inRequired = true
					break
				}
			}
			if table.Allows(role, sec) != inRequired {
				t.Errorf("role %s, section %s: allowed and required views disagree", role, sec)
			}
		}
	}
}

func TestPermissionTable_UnknownRoleGetsDashboardOnly(t *testing.T) {
	table := DefaultPermissionTable()

	sections := table.AllowedSections(Role("Martian"))
	if len(sections) != 1 || sections[0] != SectionDashboard {
		t.Fatalf("unknown role sections = %v, want [dashboard]", sections)
	}
	if table.Allows(RoleUnknown, SectionPatients) {
		t.Fatalf("unknown role must not enter patients")
	}
	if !table.Allows(RoleUnknown, SectionDashboard) {
		t.Fatalf("unknown role must still reach the dashboard")
	}
}

func TestPermissionTable_RequiredRolesOrder(t *testing.T) {
	table := DefaultPermissionTable()

	got := table.RequiredRoles(SectionPharmacy)
	want := []Role{RoleAdmin, RoleNurse}
	if len(got) != len(want) {
		t.Fatalf("RequiredRoles(pharmacy) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RequiredRoles(pharmacy) = %v, want %v", got, want)
		}
	}
}

func TestParseSection(t *testing.T) {
	if _, err := ParseSection("pharmacy"); err != nil {
		t.Fatalf("pharmacy should parse: %v", err)
	}
	if _, err := ParseSection("laundry"); err != ErrUnknownSection {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Admin":   RoleAdmin,
		"admin":   RoleAdmin,
		" Doctor": RoleDoctor,
		"NURSE":   RoleNurse,
		"janitor": RoleUnknown,
		"":        RoleUnknown,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %s, want %s", in, got, want)
		}
	}
}
