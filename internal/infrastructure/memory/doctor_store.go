package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// DoctorStore is the in-memory doctor register.
type DoctorStore struct {
	mu      sync.RWMutex
	doctors map[string]*domain.Doctor
	seq     int
}

var _ ports.DoctorRepository = (*DoctorStore)(nil)

// NewDoctorStore returns a store seeded with the demo doctor rows.
func NewDoctorStore() *DoctorStore {
	s := &DoctorStore{doctors: make(map[string]*domain.Doctor), seq: 1000}
	for _, d := range seedDoctors() {
		s.doctors[d.ID] = d
		s.seq++
	}
	return s
}

func seedDoctors() []*domain.Doctor {
	return []*domain.Doctor{
		{
			ID: "DOC-1001", Name: "Dr. Ama Mensah", Speciality: "General Surgery",
			Department: "Surgery", Phone: "024-111-2222", Email: "amensah@upsaclinic.com",
			Schedule: "Mon-Fri 8AM-5PM", Status: domain.DoctorActive, Experience: "15+ years",
		},
		{
			ID: "DOC-1002", Name: "Dr. Kwame Asante", Speciality: "Pediatrics",
			Department: "Pediatrics", Phone: "024-333-4444", Email: "kasante@upsaclinic.com",
			Schedule: "Mon-Sat 9AM-6PM", Status: domain.DoctorActive, Experience: "11-15 years",
		},
		{
			ID: "DOC-1003", Name: "Dr. Esi Boateng", Speciality: "Cardiology",
			Department: "Cardiology", Phone: "024-555-6666", Email: "eboateng@upsaclinic.com",
			Schedule: "24/7 On-call", Status: domain.DoctorActive, Experience: "15+ years",
		},
		{
			ID: "DOC-1004", Name: "Dr. Yaw Bonsu", Speciality: "Orthopedics",
			Department: "Orthopedics", Phone: "024-777-8888", Email: "ybonsu@upsaclinic.com",
			Schedule: "Mon-Fri 8AM-5PM", Status: domain.DoctorOnLeave, Experience: "6-10 years",
		},
		{
			ID: "DOC-1005", Name: "Dr. Akua Serwaa", Speciality: "Dermatology",
			Department: "Dermatology", Phone: "024-999-0000", Email: "aserwaa@upsaclinic.com",
			Schedule: "Weekends Only", Status: domain.DoctorActive, Experience: "3-5 years",
		},
	}
}

func (s *DoctorStore) List(_ context.Context) ([]*domain.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		clone := *d
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *DoctorStore) Find(_ context.Context, id string) (*domain.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	clone := *d
	return &clone, nil
}

func (s *DoctorStore) Create(_ context.Context, d *domain.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	d.ID = fmt.Sprintf("DOC-%d", s.seq)
	clone := *d
	s.doctors[d.ID] = &clone
	return nil
}

func (s *DoctorStore) Update(_ context.Context, d *domain.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doctors[d.ID]; !ok {
		return domain.ErrDoctorNotFound
	}
	clone := *d
	s.doctors[d.ID] = &clone
	return nil
}

func (s *DoctorStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doctors[id]; !ok {
		return domain.ErrDoctorNotFound
	}
	delete(s.doctors, id)
	return nil
}
