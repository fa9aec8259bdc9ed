package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// VitalsStore keeps the latest vitals reading per patient.
type VitalsStore struct {
	mu      sync.RWMutex
	records map[string]*domain.VitalsRecord
}

var _ ports.VitalsRepository = (*VitalsStore)(nil)

// NewVitalsStore returns a store seeded with the demo readings.
func NewVitalsStore() *VitalsStore {
	s := &VitalsStore{records: make(map[string]*domain.VitalsRecord)}
	now := time.Now().UTC()
	for _, v := range seedVitals(now) {
		s.records[v.PatientID] = v
	}
	return s
}

func seedVitals(now time.Time) []*domain.VitalsRecord {
	return []*domain.VitalsRecord{
		{
			PatientID: "PAT-1001", PatientName: "Ama Mensah", Temperature: 36.8,
			BloodPressure: "120/80", HeartRate: 72, OxygenSat: 98, RespiratoryRate: 16,
			WeightKg: 65.5, HeightCm: 165, RecordedAt: now,
		},
		{
			PatientID: "PAT-1002", PatientName: "Kwame Ofori", Temperature: 37.2,
			BloodPressure: "135/85", HeartRate: 68, OxygenSat: 96, RespiratoryRate: 18,
			WeightKg: 78.2, HeightCm: 175, RecordedAt: now,
		},
		{
			PatientID: "PAT-1003", PatientName: "Esi Boateng", Temperature: 38.6,
			BloodPressure: "110/70", HeartRate: 88, OxygenSat: 95, RespiratoryRate: 20,
			WeightKg: 58.0, HeightCm: 160, RecordedAt: now,
		},
	}
}

func (s *VitalsStore) List(_ context.Context) ([]*domain.VitalsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.VitalsRecord, 0, len(s.records))
	for _, v := range s.records {
		clone := *v
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PatientID < out[j].PatientID })
	return out, nil
}

func (s *VitalsStore) Find(_ context.Context, patientID string) (*domain.VitalsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[patientID]
	if !ok {
		return nil, domain.ErrVitalsNotFound
	}
	clone := *v
	return &clone, nil
}

// Save stores a reading, replacing any previous reading for the patient.
func (s *VitalsStore) Save(_ context.Context, v *domain.VitalsRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *v
	s.records[v.PatientID] = &clone
	return nil
}

func (s *VitalsStore) Delete(_ context.Context, patientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[patientID]; !ok {
		return domain.ErrVitalsNotFound
	}
	delete(s.records, patientID)
	return nil
}
