package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// BedService implements the bed management section. Capacity is fixed at
// startup from configuration; only occupied beds are stored.
type BedService struct {
	repo     ports.BedRepository
	capacity int
	log      zerolog.Logger
}

func NewBedService(repo ports.BedRepository, capacity int, log zerolog.Logger) *BedService {
	return &BedService{repo: repo, capacity: capacity, log: log}
}

func (s *BedService) ListBeds(ctx context.Context, query string) ([]*domain.Bed, error) {
	beds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Bed, 0, len(beds))
	for _, b := range beds {
		if matchesQuery(query, b.BedNo, b.Ward, b.PatientID, b.PatientName, b.Doctor) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *BedService) Assign(ctx context.Context, in ports.AssignBedInput) (*domain.Bed, error) {
	if _, err := s.repo.Find(ctx, in.BedNo); err == nil {
		return nil, domain.ErrBedOccupied
	}
	bed := &domain.Bed{
		BedNo:       in.BedNo,
		Ward:        in.Ward,
		PatientID:   in.PatientID,
		PatientName: in.PatientName,
		AdmittedAt:  time.Now().UTC(),
		Diagnosis:   in.Diagnosis,
		Doctor:      in.Doctor,
		Severity:    in.Severity,
	}
	if err := s.repo.Create(ctx, bed); err != nil {
		return nil, err
	}
	s.log.Info().Str("bed_no", bed.BedNo).Str("patient", in.PatientName).Msg("bed assigned")
	return bed, nil
}

func (s *BedService) Discharge(ctx context.Context, bedNo string) error {
	if err := s.repo.Delete(ctx, bedNo); err != nil {
		return err
	}
	s.log.Info().Str("bed_no", bedNo).Msg("patient discharged")
	return nil
}

// Transfer moves an admission to a new ward and bed, keeping the admission
// details. The target bed must be free.
func (s *BedService) Transfer(ctx context.Context, bedNo, newWard, newBedNo string) (*domain.Bed, error) {
	bed, err := s.repo.Find(ctx, bedNo)
	if err != nil {
		return nil, err
	}
	if newBedNo != bedNo {
		if _, err := s.repo.Find(ctx, newBedNo); err == nil {
			return nil, domain.ErrBedOccupied
		}
	}
	moved := *bed
	moved.BedNo = newBedNo
	moved.Ward = newWard
	if err := s.repo.Delete(ctx, bedNo); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &moved); err != nil {
		return nil, err
	}
	s.log.Info().Str("from", bedNo).Str("to", newBedNo).Str("ward", newWard).Msg("patient transferred")
	return &moved, nil
}

func (s *BedService) Stats(ctx context.Context) (*domain.OccupancyStats, error) {
	beds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := domain.NewOccupancyStats(len(beds), s.capacity)
	return &stats, nil
}
