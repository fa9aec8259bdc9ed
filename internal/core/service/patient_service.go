package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// PatientService implements the patients section over the patient register.
type PatientService struct {
	repo ports.PatientRepository
	log  zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

func (s *PatientService) ListPatients(ctx context.Context, query string) ([]*domain.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Patient, 0, len(patients))
	for _, p := range patients {
		if matchesQuery(query, p.ID, p.Name, p.StudentNo, p.Programme) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.Find(ctx, id)
}

func (s *PatientService) CreatePatient(ctx context.Context, in ports.PatientInput) (*domain.Patient, error) {
	patient := patientFromInput(in)
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	s.log.Info().Str("patient_id", patient.ID).Str("name", patient.Name).Msg("patient registered")
	return patient, nil
}

func (s *PatientService) UpdatePatient(ctx context.Context, id string, in ports.PatientInput) (*domain.Patient, error) {
	if _, err := s.repo.Find(ctx, id); err != nil {
		return nil, err
	}
	patient := patientFromInput(in)
	patient.ID = id
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) DeletePatient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("patient_id", id).Msg("patient removed")
	return nil
}

func (s *PatientService) Stats(ctx context.Context) (*ports.PatientStats, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.PatientStats{Total: len(patients)}
	for _, p := range patients {
		if p.Status == domain.PatientActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

func patientFromInput(in ports.PatientInput) *domain.Patient {
	status := in.Status
	if status == "" {
		status = domain.PatientActive
	}
	return &domain.Patient{
		Name:        in.Name,
		StudentNo:   in.StudentNo,
		Programme:   in.Programme,
		Level:       in.Level,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		BloodGroup:  in.BloodGroup,
		Genotype:    in.Genotype,
		Rhesus:      in.Rhesus,
		Phone:       in.Phone,
		Condition:   in.Condition,
		Status:      status,
	}
}
