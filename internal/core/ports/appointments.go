package ports

import (
	"context"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// AppointmentRepository defines storage operations for appointments.
type AppointmentRepository interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	Find(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) error
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id string) error
}

// ScheduleAppointmentInput carries the fields needed to book a consultation.
type ScheduleAppointmentInput struct {
	Date       time.Time
	Time       string
	Patient    string
	Doctor     string
	Department string
	Notes      string
}

// AppointmentStats is the panel's aggregate label.
type AppointmentStats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Today     int `json:"today"`
}

// AppointmentService defines use-case operations for the appointments section.
type AppointmentService interface {
	ListAppointments(ctx context.Context, query string) ([]*domain.Appointment, error)
	Schedule(ctx context.Context, in ScheduleAppointmentInput) (*domain.Appointment, error)
	// Complete and Cancel only apply to open (scheduled) appointments.
	Complete(ctx context.Context, id string) (*domain.Appointment, error)
	Cancel(ctx context.Context, id, reason string) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	Stats(ctx context.Context) (*AppointmentStats, error)
}
