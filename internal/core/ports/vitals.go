package ports

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// VitalsRepository defines storage operations for vitals readings. Readings
// are keyed by patient ID; recording again replaces the previous reading.
type VitalsRepository interface {
	List(ctx context.Context) ([]*domain.VitalsRecord, error)
	Find(ctx context.Context, patientID string) (*domain.VitalsRecord, error)
	Save(ctx context.Context, v *domain.VitalsRecord) error
	Delete(ctx context.Context, patientID string) error
}

// RecordVitalsInput carries one vitals reading.
type RecordVitalsInput struct {
	PatientID       string
	PatientName     string
	Temperature     float64
	BloodPressure   string
	HeartRate       int
	OxygenSat       int
	RespiratoryRate int
	WeightKg        float64
	HeightCm        float64
}

// VitalsView is a reading together with its derived values.
type VitalsView struct {
	domain.VitalsRecord
	BMI    float64             `json:"bmi"`
	Status domain.VitalsStatus `json:"status"`
}

// VitalsStats is the panel's aggregate label.
type VitalsStats struct {
	Monitored int `json:"monitored"`
	Fever     int `json:"fever"`
}

// VitalsService defines use-case operations for the vitals section.
type VitalsService interface {
	ListVitals(ctx context.Context, query string) ([]*VitalsView, error)
	Record(ctx context.Context, in RecordVitalsInput) (*VitalsView, error)
	Stats(ctx context.Context) (*VitalsStats, error)
}
