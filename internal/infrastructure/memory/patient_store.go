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

// PatientStore is the in-memory patient register.
type PatientStore struct {
	mu       sync.RWMutex
	patients map[string]*domain.Patient
	seq      int
}

var _ ports.PatientRepository = (*PatientStore)(nil)

// NewPatientStore returns a store seeded with the demo patient rows.
func NewPatientStore() *PatientStore {
	s := &PatientStore{patients: make(map[string]*domain.Patient), seq: 1000}
	for _, p := range seedPatients() {
		s.patients[p.ID] = p
		s.seq++
	}
	return s
}

func seedPatients() []*domain.Patient {
	return []*domain.Patient{
		{
			ID: "PAT-1001", Name: "Ama Mensah", StudentNo: "UPSA2023001",
			Programme: "BSc Information Technology", Level: "300", Gender: "Female",
			DateOfBirth: date(1996, 5, 12), BloodGroup: "O+", Genotype: "AA",
			Rhesus: "Negative", Phone: "024-111-2222", Condition: "Diabetes",
			Status: domain.PatientActive,
		},
		{
			ID: "PAT-1002", Name: "Kwame Ofori", StudentNo: "UPSA2023002",
			Programme: "BSc Business Administration", Level: "200", Gender: "Male",
			DateOfBirth: date(1998, 8, 25), BloodGroup: "A+", Genotype: "AS",
			Rhesus: "Positive", Phone: "024-333-4444", Condition: "Hypertension",
			Status: domain.PatientActive,
		},
		{
			ID: "PAT-1003", Name: "Esi Boateng", StudentNo: "UPSA2023003",
			Programme: "BSc Accounting", Level: "400", Gender: "Female",
			DateOfBirth: date(1995, 12, 3), BloodGroup: "B-", Genotype: "AA",
			Rhesus: "Negative", Phone: "024-555-6666", Condition: "Asthma",
			Status: domain.PatientActive,
		},
		{
			ID: "PAT-1004", Name: "Yaw Bonsu", StudentNo: "UPSA2023004",
			Programme: "BSc Nursing", Level: "100", Gender: "Male",
			DateOfBirth: date(2000, 3, 18), BloodGroup: "AB+", Genotype: "AS",
			Rhesus: "Negative", Phone: "024-777-8888", Condition: "None",
			Status: domain.PatientActive,
		},
		{
			ID: "PAT-1005", Name: "Akua Serwaa", StudentNo: "UPSA2023005",
			Programme: "Diploma in Management", Level: "Graduate", Gender: "Female",
			DateOfBirth: date(1993, 7, 30), BloodGroup: "O-", Genotype: "AA",
			Rhesus: "Negative", Phone: "024-999-0000", Condition: "Migraine",
			Status: domain.PatientInactive,
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *PatientStore) List(_ context.Context) ([]*domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *PatientStore) Find(_ context.Context, id string) (*domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *PatientStore) Create(_ context.Context, p *domain.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	p.ID = fmt.Sprintf("PAT-%d", s.seq)
	clone := *p
	s.patients[p.ID] = &clone
	return nil
}

func (s *PatientStore) Update(_ context.Context, p *domain.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[p.ID]; !ok {
		return domain.ErrPatientNotFound
	}
	clone := *p
	s.patients[p.ID] = &clone
	return nil
}

func (s *PatientStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[id]; !ok {
		return domain.ErrPatientNotFound
	}
	delete(s.patients, id)
	return nil
}
