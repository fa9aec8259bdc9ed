package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// AppointmentStore is the in-memory appointment book.
type AppointmentStore struct {
	mu           sync.RWMutex
	appointments map[string]*domain.Appointment
	seq          int
}

var _ ports.AppointmentRepository = (*AppointmentStore)(nil)

// NewAppointmentStore returns a store seeded with demo appointments placed
// around today, so the "today" stat has data on any date.
func NewAppointmentStore() *AppointmentStore {
	s := &AppointmentStore{appointments: make(map[string]*domain.Appointment), seq: 1000}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, a := range seedAppointments(today) {
		s.appointments[a.ID] = a
		s.seq++
	}
	return s
}

func seedAppointments(today time.Time) []*domain.Appointment {
	return []*domain.Appointment{
		{
			ID: "APT-1001", Date: today, Time: "09:00", Patient: "Ama Mensah",
			Doctor: "Dr. Kwame Asante", Department: "General",
			Status: domain.AppointmentScheduled, Notes: "Routine checkup",
		},
		{
			ID: "APT-1002", Date: today.AddDate(0, 0, 1), Time: "11:30", Patient: "Kofi Johnson",
			Doctor: "Dr. Esi Boateng", Department: "Cardiology",
			Status: domain.AppointmentScheduled, Notes: "Heart consultation",
		},
		{
			ID: "APT-1003", Date: today.AddDate(0, 0, -1), Time: "14:15", Patient: "Yaa Addae",
			Doctor: "Dr. Ama Mensah", Department: "Pediatrics",
			Status: domain.AppointmentCompleted, Notes: "Child vaccination",
		},
		{
			ID: "APT-1004", Date: today.AddDate(0, 0, 2), Time: "10:45", Patient: "Kwame Ofori",
			Doctor: "Dr. Yaw Bonsu", Department: "Orthopedics",
			Status: domain.AppointmentScheduled, Notes: "Knee pain evaluation",
		},
		{
			ID: "APT-1005", Date: today.AddDate(0, 0, -2), Time: "13:20", Patient: "Akua Serwaa",
			Doctor: "Dr. Esi Boateng", Department: "Cardiology",
			Status: domain.AppointmentCancelled, Notes: "Patient rescheduled",
		},
	}
}

func (s *AppointmentStore) List(_ context.Context) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *AppointmentStore) Find(_ context.Context, id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (s *AppointmentStore) Create(_ context.Context, a *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	a.ID = fmt.Sprintf("APT-%d", s.seq)
	clone := *a
	s.appointments[a.ID] = &clone
	return nil
}

func (s *AppointmentStore) Update(_ context.Context, a *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[a.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	clone := *a
	s.appointments[a.ID] = &clone
	return nil
}

func (s *AppointmentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(s.appointments, id)
	return nil
}
