package domain

// Settings is the clinic-wide configuration document. A single instance lives
// in memory; updates replace whole fields.
type Settings struct {
	ClinicName             string `json:"clinic_name"`
	Address                string `json:"address"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
	WorkingHours           string `json:"working_hours"`
	BedCapacity            int    `json:"bed_capacity"`
	AppointmentSlotMinutes int    `json:"appointment_slot_minutes"`
}
