package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// AppointmentService implements the appointments section.
type AppointmentService struct {
	repo ports.AppointmentRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewAppointmentService(repo ports.AppointmentRepository, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, log: log, now: time.Now}
}

func (s *AppointmentService) ListAppointments(ctx context.Context, query string) ([]*domain.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if matchesQuery(query, a.ID, a.Patient, a.Doctor, a.Department, string(a.Status)) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (s *AppointmentService) Schedule(ctx context.Context, in ports.ScheduleAppointmentInput) (*domain.Appointment, error) {
	appointment := &domain.Appointment{
		Date:       in.Date,
		Time:       in.Time,
		Patient:    in.Patient,
		Doctor:     in.Doctor,
		Department: in.Department,
		Status:     domain.AppointmentScheduled,
		Notes:      in.Notes,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	s.log.Info().Str("appointment_id", appointment.ID).Str("patient", in.Patient).Msg("appointment scheduled")
	return appointment, nil
}

func (s *AppointmentService) Complete(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.close(ctx, id, domain.AppointmentCompleted, "")
}

func (s *AppointmentService) Cancel(ctx context.Context, id, reason string) (*domain.Appointment, error) {
	return s.close(ctx, id, domain.AppointmentCancelled, reason)
}

func (s *AppointmentService) close(ctx context.Context, id string, status domain.AppointmentStatus, notes string) (*domain.Appointment, error) {
	appointment, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.Open() {
		return nil, domain.ErrAppointmentClosed
	}
	appointment.Status = status
	if notes != "" {
		appointment.Notes = notes
	}
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	s.log.Info().Str("appointment_id", id).Str("status", string(status)).Msg("appointment closed")
	return appointment, nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AppointmentService) Stats(ctx context.Context) (*ports.AppointmentStats, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	stats := &ports.AppointmentStats{Total: len(appointments)}
	for _, a := range appointments {
		switch a.Status {
		case domain.AppointmentScheduled:
			stats.Scheduled++
		case domain.AppointmentCompleted:
			stats.Completed++
		case domain.AppointmentCancelled:
			stats.Cancelled++
		}
		if a.Date.UTC().Truncate(24 * time.Hour).Equal(today) {
			stats.Today++
		}
	}
	return stats, nil
}
