package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	seq          int
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment), seq: 2000}
}

func (r *stubAppointmentRepo) List(_ context.Context) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAppointmentRepo) Find(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	r.seq++
	a.ID = fmt.Sprintf("APT-%d", r.seq)
	clone := *a
	r.appointments[a.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if _, ok := r.appointments[a.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	clone := *a
	r.appointments[a.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func TestAppointmentService_ScheduleAndComplete(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), zerolog.Nop())

	a, err := svc.Schedule(context.Background(), scheduleInput("Ama Serwaa"))
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if a.ID == "" || a.Status != domain.AppointmentScheduled {
		t.Fatalf("unexpected appointment: %+v", a)
	}

	done, err := svc.Complete(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if done.Status != domain.AppointmentCompleted {
		t.Fatalf("status = %s, want Completed", done.Status)
	}

	// A closed appointment cannot be closed again.
	if _, err := svc.Cancel(context.Background(), a.ID, "no-show"); !errors.Is(err, domain.ErrAppointmentClosed) {
		t.Fatalf("expected ErrAppointmentClosed, got %v", err)
	}
}

func TestAppointmentService_CancelKeepsReason(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), zerolog.Nop())

	a, _ := svc.Schedule(context.Background(), scheduleInput("Kojo Mensah"))
	cancelled, err := svc.Cancel(context.Background(), a.ID, "patient travelled")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != domain.AppointmentCancelled || cancelled.Notes != "patient travelled" {
		t.Fatalf("unexpected cancellation: %+v", cancelled)
	}
}

func TestAppointmentService_Stats(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	first, _ := svc.Schedule(context.Background(), scheduleInputOn("A", today))
	second, _ := svc.Schedule(context.Background(), scheduleInputOn("B", today.AddDate(0, 0, 1)))
	third, _ := svc.Schedule(context.Background(), scheduleInputOn("C", today))
	_, _ = svc.Complete(context.Background(), first.ID)
	_, _ = svc.Cancel(context.Background(), second.ID, "")
	_ = third

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 3 || stats.Scheduled != 1 || stats.Completed != 1 || stats.Cancelled != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Today != 2 {
		t.Fatalf("Today = %d, want 2", stats.Today)
	}
}

func TestAppointmentService_ListFilters(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), zerolog.Nop())

	_, _ = svc.Schedule(context.Background(), scheduleInput("Ama Serwaa"))
	_, _ = svc.Schedule(context.Background(), scheduleInput("Kojo Mensah"))

	all, err := svc.ListAppointments(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("empty query should list all, got %d", len(all))
	}

	found, err := svc.ListAppointments(context.Background(), "kojo")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 1 || found[0].Patient != "Kojo Mensah" {
		t.Fatalf("unexpected search result: %+v", found)
	}
}

func scheduleInput(patient string) ports.ScheduleAppointmentInput {
	return scheduleInputOn(patient, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
}

func scheduleInputOn(patient string, date time.Time) ports.ScheduleAppointmentInput {
	return ports.ScheduleAppointmentInput{
		Date:       date,
		Time:       "10:30 AM",
		Patient:    patient,
		Doctor:     "Dr. Kwame Asante",
		Department: "General Medicine",
	}
}
