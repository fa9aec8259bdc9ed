package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// VitalsService implements the patient vitals section.
type VitalsService struct {
	repo ports.VitalsRepository
	log  zerolog.Logger
}

func NewVitalsService(repo ports.VitalsRepository, log zerolog.Logger) *VitalsService {
	return &VitalsService{repo: repo, log: log}
}

func (s *VitalsService) ListVitals(ctx context.Context, query string) ([]*ports.VitalsView, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ports.VitalsView, 0, len(records))
	for _, v := range records {
		if matchesQuery(query, v.PatientID, v.PatientName, string(v.Status())) {
			views = append(views, vitalsView(v))
		}
	}
	return views, nil
}

// Record stores a reading for a patient, replacing any previous one. BMI and
// the temperature status are derived, never supplied by the caller.
func (s *VitalsService) Record(ctx context.Context, in ports.RecordVitalsInput) (*ports.VitalsView, error) {
	record := &domain.VitalsRecord{
		PatientID:       in.PatientID,
		PatientName:     in.PatientName,
		Temperature:     in.Temperature,
		BloodPressure:   in.BloodPressure,
		HeartRate:       in.HeartRate,
		OxygenSat:       in.OxygenSat,
		RespiratoryRate: in.RespiratoryRate,
		WeightKg:        in.WeightKg,
		HeightCm:        in.HeightCm,
		RecordedAt:      time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("patient_id", in.PatientID).
		Float64("temperature", in.Temperature).
		Str("status", string(record.Status())).
		Msg("vitals recorded")
	return vitalsView(record), nil
}

func (s *VitalsService) Stats(ctx context.Context) (*ports.VitalsStats, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.VitalsStats{Monitored: len(records)}
	for _, v := range records {
		if v.Status() != domain.VitalsNormal {
			stats.Fever++
		}
	}
	return stats, nil
}

func vitalsView(v *domain.VitalsRecord) *ports.VitalsView {
	return &ports.VitalsView{
		VitalsRecord: *v,
		BMI:          v.BMI(),
		Status:       v.Status(),
	}
}
