package domain

import "errors"

// Section identifies one navigable area of the clinic application.
type Section string

const (
	SectionDashboard    Section = "dashboard"
	SectionPatients     Section = "patients"
	SectionDoctors      Section = "doctors"
	SectionAppointments Section = "appointments"
	SectionBilling      Section = "billing"
	SectionPharmacy     Section = "pharmacy"
	SectionMessages     Section = "messages"
	SectionSettings     Section = "settings"
	SectionVitals       Section = "vitals"
	SectionBeds         Section = "beds"
)

// AllSections is the closed set of sections; no dynamic sections exist.
var AllSections = []Section{
	SectionDashboard, SectionPatients, SectionDoctors, SectionAppointments,
	SectionBilling, SectionPharmacy, SectionMessages, SectionSettings,
	SectionVitals, SectionBeds,
}

var ErrUnknownSection = errors.New("unknown section")

// ParseSection validates a section key against the closed set.
func ParseSection(s string) (Section, error) {
	for _, sec := range AllSections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", ErrUnknownSection
}

func (s Section) String() string {
	return string(s)
}

// Title returns the human-readable name used in denial messages.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "Dashboard"
	case SectionPatients:
		return "Patients"
	case SectionDoctors:
		return "Doctors"
	case SectionAppointments:
		return "Appointments"
	case SectionBilling:
		return "Billing"
	case SectionPharmacy:
		return "Pharmacy"
	case SectionMessages:
		return "Messages"
	case SectionSettings:
		return "Settings"
	case SectionVitals:
		return "Patient Vitals"
	case SectionBeds:
		return "Bed Management"
	default:
		return string(s)
	}
}
