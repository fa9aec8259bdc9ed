package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// BedStore is the in-memory admission table; only occupied beds are rows.
type BedStore struct {
	mu   sync.RWMutex
	beds map[string]*domain.Bed
}

var _ ports.BedRepository = (*BedStore)(nil)

// NewBedStore returns a store seeded with the demo admissions.
func NewBedStore() *BedStore {
	s := &BedStore{beds: make(map[string]*domain.Bed)}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, b := range seedBeds(today) {
		s.beds[b.BedNo] = b
	}
	return s
}

func seedBeds(today time.Time) []*domain.Bed {
	return []*domain.Bed{
		{
			BedNo: "B-101", Ward: "General Ward", PatientID: "PAT-1001", PatientName: "Ama Mensah",
			AdmittedAt: today.AddDate(0, 0, -2), Diagnosis: "Pneumonia",
			Doctor: "Dr. Kwesi Mensah", Severity: domain.SeverityMedium,
		},
		{
			BedNo: "ICU-05", Ward: "ICU", PatientID: "PAT-1003", PatientName: "Esi Boateng",
			AdmittedAt: today.AddDate(0, 0, -1), Diagnosis: "High Fever",
			Doctor: "Dr. Abena Osei", Severity: domain.SeverityCritical,
		},
		{
			BedNo: "P-201", Ward: "Pediatrics", PatientID: "PAT-1004", PatientName: "Yaw Bonsu",
			AdmittedAt: today, Diagnosis: "Asthma",
			Doctor: "Dr. Kofi Asare", Severity: domain.SeverityHigh,
		},
		{
			BedNo: "M-301", Ward: "Maternity", PatientID: "PAT-1005", PatientName: "Akua Serwaa",
			AdmittedAt: today.AddDate(0, 0, -3), Diagnosis: "Delivery",
			Doctor: "Dr. Nana Ama", Severity: domain.SeverityMedium,
		},
	}
}

func (s *BedStore) List(_ context.Context) ([]*domain.Bed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Bed, 0, len(s.beds))
	for _, b := range s.beds {
		clone := *b
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BedNo < out[j].BedNo })
	return out, nil
}

func (s *BedStore) Find(_ context.Context, bedNo string) (*domain.Bed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.beds[bedNo]
	if !ok {
		return nil, domain.ErrBedNotFound
	}
	clone := *b
	return &clone, nil
}

func (s *BedStore) Create(_ context.Context, b *domain.Bed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.beds[b.BedNo]; ok {
		return domain.ErrBedOccupied
	}
	clone := *b
	s.beds[b.BedNo] = &clone
	return nil
}

func (s *BedStore) Update(_ context.Context, b *domain.Bed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.beds[b.BedNo]; !ok {
		return domain.ErrBedNotFound
	}
	clone := *b
	s.beds[b.BedNo] = &clone
	return nil
}

func (s *BedStore) Delete(_ context.Context, bedNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.beds[bedNo]; !ok {
		return domain.ErrBedNotFound
	}
	delete(s.beds, bedNo)
	return nil
}
