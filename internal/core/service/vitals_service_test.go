package service

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

type stubVitalsRepo struct {
	records map[string]*domain.VitalsRecord
}

func newStubVitalsRepo() *stubVitalsRepo {
	return &stubVitalsRepo{records: make(map[string]*domain.VitalsRecord)}
}

func (r *stubVitalsRepo) List(_ context.Context) ([]*domain.VitalsRecord, error) {
	out := make([]*domain.VitalsRecord, 0, len(r.records))
	for _, v := range r.records {
		clone := *v
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubVitalsRepo) Find(_ context.Context, patientID string) (*domain.VitalsRecord, error) {
	v, ok := r.records[patientID]
	if !ok {
		return nil, domain.ErrVitalsNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVitalsRepo) Save(_ context.Context, v *domain.VitalsRecord) error {
	clone := *v
	r.records[v.PatientID] = &clone
	return nil
}

func (r *stubVitalsRepo) Delete(_ context.Context, patientID string) error {
	delete(r.records, patientID)
	return nil
}

func reading(patientID string, temp float64) ports.RecordVitalsInput {
	return ports.RecordVitalsInput{
		PatientID:     patientID,
		PatientName:   "Ama Serwaa",
		Temperature:   temp,
		BloodPressure: "120/80",
		HeartRate:     72,
		OxygenSat:     98,
		WeightKg:      68,
		HeightCm:      170,
	}
}

func TestVitalsService_RecordDerivesValues(t *testing.T) {
	svc := NewVitalsService(newStubVitalsRepo(), zerolog.Nop())

	view, err := svc.Record(context.Background(), reading("PAT-1001", 38.6))
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if view.Status != domain.VitalsFever {
		t.Fatalf("status = %s, want Fever", view.Status)
	}
	wantBMI := 68 / (1.70 * 1.70)
	if math.Abs(view.BMI-wantBMI) > 0.001 {
		t.Fatalf("BMI = %.3f, want %.3f", view.BMI, wantBMI)
	}
	if view.RecordedAt.IsZero() {
		t.Fatalf("recorded time not set")
	}
}

func TestVitalsService_RecordReplacesPrevious(t *testing.T) {
	svc := NewVitalsService(newStubVitalsRepo(), zerolog.Nop())

	_, _ = svc.Record(context.Background(), reading("PAT-1001", 39.8))
	_, _ = svc.Record(context.Background(), reading("PAT-1001", 36.8))

	views, err := svc.ListVitals(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("re-recording must replace, got %d records", len(views))
	}
	if views[0].Status != domain.VitalsNormal {
		t.Fatalf("status = %s, want Normal", views[0].Status)
	}
}

func TestVitalsService_StatsCountsFevers(t *testing.T) {
	svc := NewVitalsService(newStubVitalsRepo(), zerolog.Nop())

	_, _ = svc.Record(context.Background(), reading("PAT-1001", 36.8))
	_, _ = svc.Record(context.Background(), reading("PAT-1002", 38.6))
	_, _ = svc.Record(context.Background(), reading("PAT-1003", 39.9))

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Monitored != 3 || stats.Fever != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
