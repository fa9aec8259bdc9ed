package ports

import (
	"context"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// BedRepository defines storage operations for occupied beds.
type BedRepository interface {
	List(ctx context.Context) ([]*domain.Bed, error)
	Find(ctx context.Context, bedNo string) (*domain.Bed, error)
	Create(ctx context.Context, b *domain.Bed) error
	Update(ctx context.Context, b *domain.Bed) error
	Delete(ctx context.Context, bedNo string) error
}

// AssignBedInput carries an admission.
type AssignBedInput struct {
	BedNo       string
	Ward        string
	PatientID   string
	PatientName string
	Diagnosis   string
	Doctor      string
	Severity    domain.BedSeverity
}

// BedService defines use-case operations for the bed management section.
type BedService interface {
	ListBeds(ctx context.Context, query string) ([]*domain.Bed, error)
	// Assign admits a patient to a free bed; assigning to an occupied bed
	// fails with ErrBedOccupied.
	Assign(ctx context.Context, in AssignBedInput) (*domain.Bed, error)
	Discharge(ctx context.Context, bedNo string) error
	// Transfer moves an admitted patient to a new ward and bed number.
	Transfer(ctx context.Context, bedNo, newWard, newBedNo string) (*domain.Bed, error)
	Stats(ctx context.Context) (*domain.OccupancyStats, error)
}
