package ports

import (
	"context"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// DrugRepository defines storage operations for the pharmacy inventory.
type DrugRepository interface {
	List(ctx context.Context) ([]*domain.Drug, error)
	Find(ctx context.Context, id string) (*domain.Drug, error)
	Create(ctx context.Context, d *domain.Drug) error
	Update(ctx context.Context, d *domain.Drug) error
	Delete(ctx context.Context, id string) error
}

// AddDrugInput carries the fields of a new inventory item.
type AddDrugInput struct {
	Name      string
	Category  string
	Quantity  int
	UnitPrice float64
	Expiry    time.Time
	Supplier  string
}

// PharmacyStats is the inventory's aggregate label.
type PharmacyStats struct {
	Total          int     `json:"total"`
	InStock        int     `json:"in_stock"`
	LowStock       int     `json:"low_stock"`
	OutOfStock     int     `json:"out_of_stock"`
	InventoryValue float64 `json:"inventory_value"`
}

// PharmacyService defines use-case operations for the pharmacy section.
type PharmacyService interface {
	ListDrugs(ctx context.Context, query string) ([]*domain.Drug, error)
	AddDrug(ctx context.Context, in AddDrugInput) (*domain.Drug, error)
	// Dispense reduces stock; dispensing more than is on hand fails with
	// ErrInsufficientStock and leaves the quantity unchanged.
	Dispense(ctx context.Context, id string, quantity int) (*domain.Drug, error)
	Restock(ctx context.Context, id string, quantity int) (*domain.Drug, error)
	DeleteDrug(ctx context.Context, id string) error
	Stats(ctx context.Context) (*PharmacyStats, error)
}
