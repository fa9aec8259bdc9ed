package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

type stubBedRepo struct {
	beds map[string]*domain.Bed
}

func newStubBedRepo() *stubBedRepo {
	return &stubBedRepo{beds: make(map[string]*domain.Bed)}
}

func (r *stubBedRepo) List(_ context.Context) ([]*domain.Bed, error) {
	out := make([]*domain.Bed, 0, len(r.beds))
	for _, b := range r.beds {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBedRepo) Find(_ context.Context, bedNo string) (*domain.Bed, error) {
	b, ok := r.beds[bedNo]
	if !ok {
		return nil, domain.ErrBedNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBedRepo) Create(_ context.Context, b *domain.Bed) error {
	if _, ok := r.beds[b.BedNo]; ok {
		return domain.ErrBedOccupied
	}
	clone := *b
	r.beds[b.BedNo] = &clone
	return nil
}

func (r *stubBedRepo) Update(_ context.Context, b *domain.Bed) error {
	if _, ok := r.beds[b.BedNo]; !ok {
		return domain.ErrBedNotFound
	}
	clone := *b
	r.beds[b.BedNo] = &clone
	return nil
}

func (r *stubBedRepo) Delete(_ context.Context, bedNo string) error {
	if _, ok := r.beds[bedNo]; !ok {
		return domain.ErrBedNotFound
	}
	delete(r.beds, bedNo)
	return nil
}

func admission(bedNo string) ports.AssignBedInput {
	return ports.AssignBedInput{
		BedNo:       bedNo,
		Ward:        "General Ward",
		PatientID:   "PAT-1001",
		PatientName: "Ama Serwaa",
		Diagnosis:   "Malaria",
		Doctor:      "Dr. Kwame Asante",
		Severity:    domain.SeverityMedium,
	}
}

func TestBedService_AssignAndDischarge(t *testing.T) {
	svc := NewBedService(newStubBedRepo(), 50, zerolog.Nop())

	bed, err := svc.Assign(context.Background(), admission("B-101"))
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if bed.AdmittedAt.IsZero() {
		t.Fatalf("admission time not set")
	}

	if _, err := svc.Assign(context.Background(), admission("B-101")); !errors.Is(err, domain.ErrBedOccupied) {
		t.Fatalf("expected ErrBedOccupied, got %v", err)
	}

	if err := svc.Discharge(context.Background(), "B-101"); err != nil {
		t.Fatalf("discharge failed: %v", err)
	}
	if _, err := svc.Assign(context.Background(), admission("B-101")); err != nil {
		t.Fatalf("bed should be free after discharge: %v", err)
	}
}

func TestBedService_Transfer(t *testing.T) {
	svc := NewBedService(newStubBedRepo(), 50, zerolog.Nop())

	if _, err := svc.Assign(context.Background(), admission("B-101")); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	moved, err := svc.Transfer(context.Background(), "B-101", "ICU", "ICU-02")
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if moved.BedNo != "ICU-02" || moved.Ward != "ICU" {
		t.Fatalf("unexpected destination: %+v", moved)
	}
	if moved.PatientName != "Ama Serwaa" || moved.Diagnosis != "Malaria" {
		t.Fatalf("admission details lost in transfer: %+v", moved)
	}

	beds, _ := svc.ListBeds(context.Background(), "")
	if len(beds) != 1 {
		t.Fatalf("transfer must not duplicate the admission, got %d beds", len(beds))
	}
}

func TestBedService_TransferToOccupiedBed(t *testing.T) {
	svc := NewBedService(newStubBedRepo(), 50, zerolog.Nop())

	_, _ = svc.Assign(context.Background(), admission("B-101"))
	other := admission("B-102")
	other.PatientID = "PAT-1002"
	_, _ = svc.Assign(context.Background(), other)

	if _, err := svc.Transfer(context.Background(), "B-101", "General Ward", "B-102"); !errors.Is(err, domain.ErrBedOccupied) {
		t.Fatalf("expected ErrBedOccupied, got %v", err)
	}
}

func TestBedService_Stats(t *testing.T) {
	svc := NewBedService(newStubBedRepo(), 50, zerolog.Nop())

	_, _ = svc.Assign(context.Background(), admission("B-101"))
	other := admission("ICU-05")
	other.PatientID = "PAT-1003"
	_, _ = svc.Assign(context.Background(), other)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Capacity != 50 || stats.Occupied != 2 || stats.Available != 48 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.OccupancyRate != 4.0 {
		t.Fatalf("OccupancyRate = %.2f, want 4.00", stats.OccupancyRate)
	}
}
