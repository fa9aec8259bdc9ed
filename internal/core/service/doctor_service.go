package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// DoctorService implements the doctors section over the doctor register.
type DoctorService struct {
	repo ports.DoctorRepository
	log  zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, log zerolog.Logger) *DoctorService {
	return &DoctorService{repo: repo, log: log}
}

func (s *DoctorService) ListDoctors(ctx context.Context, query string) ([]*domain.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if matchesQuery(query, d.ID, d.Name, d.Speciality, d.Department) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *DoctorService) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	return s.repo.Find(ctx, id)
}

func (s *DoctorService) CreateDoctor(ctx context.Context, in ports.DoctorInput) (*domain.Doctor, error) {
	doctor := doctorFromInput(in)
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	s.log.Info().Str("doctor_id", doctor.ID).Str("name", doctor.Name).Msg("doctor registered")
	return doctor, nil
}

func (s *DoctorService) UpdateDoctor(ctx context.Context, id string, in ports.DoctorInput) (*domain.Doctor, error) {
	if _, err := s.repo.Find(ctx, id); err != nil {
		return nil, err
	}
	doctor := doctorFromInput(in)
	doctor.ID = id
	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) DeleteDoctor(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("doctor_id", id).Msg("doctor removed")
	return nil
}

func (s *DoctorService) Stats(ctx context.Context) (*ports.DoctorStats, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.DoctorStats{Total: len(doctors)}
	for _, d := range doctors {
		if d.Status == domain.DoctorOnLeave {
			stats.OnLeave++
		} else {
			stats.Active++
		}
	}
	return stats, nil
}

func doctorFromInput(in ports.DoctorInput) *domain.Doctor {
	status := in.Status
	if status == "" {
		status = domain.DoctorActive
	}
	return &domain.Doctor{
		Name:       in.Name,
		Speciality: in.Speciality,
		Department: in.Department,
		Phone:      in.Phone,
		Email:      in.Email,
		Schedule:   in.Schedule,
		Status:     status,
		Experience: in.Experience,
	}
}
