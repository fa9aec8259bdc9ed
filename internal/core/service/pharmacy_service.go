package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// PharmacyService implements the pharmacy inventory section.
type PharmacyService struct {
	repo ports.DrugRepository
	log  zerolog.Logger
}

func NewPharmacyService(repo ports.DrugRepository, log zerolog.Logger) *PharmacyService {
	return &PharmacyService{repo: repo, log: log}
}

func (s *PharmacyService) ListDrugs(ctx context.Context, query string) ([]*domain.Drug, error) {
	drugs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Drug, 0, len(drugs))
	for _, d := range drugs {
		if matchesQuery(query, d.ID, d.Name, d.Category, d.Supplier) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *PharmacyService) AddDrug(ctx context.Context, in ports.AddDrugInput) (*domain.Drug, error) {
	drug := &domain.Drug{
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Expiry:    in.Expiry,
		Supplier:  in.Supplier,
	}
	if err := s.repo.Create(ctx, drug); err != nil {
		return nil, err
	}
	s.log.Info().Str("drug_id", drug.ID).Str("name", drug.Name).Int("quantity", drug.Quantity).Msg("drug added")
	return drug, nil
}

// Dispense removes quantity units from stock. The quantity never goes
// negative; over-dispensing fails and leaves the row unchanged.
func (s *PharmacyService) Dispense(ctx context.Context, id string, quantity int) (*domain.Drug, error) {
	drug, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > drug.Quantity {
		return nil, domain.ErrInsufficientStock
	}
	drug.Quantity -= quantity
	if err := s.repo.Update(ctx, drug); err != nil {
		return nil, err
	}
	s.log.Info().Str("drug_id", id).Int("dispensed", quantity).Int("remaining", drug.Quantity).Msg("drug dispensed")
	return drug, nil
}

func (s *PharmacyService) Restock(ctx context.Context, id string, quantity int) (*domain.Drug, error) {
	drug, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if quantity > 0 {
		drug.Quantity += quantity
		if err := s.repo.Update(ctx, drug); err != nil {
			return nil, err
		}
	}
	return drug, nil
}

func (s *PharmacyService) DeleteDrug(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PharmacyService) Stats(ctx context.Context) (*ports.PharmacyStats, error) {
	drugs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.PharmacyStats{Total: len(drugs)}
	for _, d := range drugs {
		switch d.StockStatus() {
		case domain.StockIn:
			stats.InStock++
		case domain.StockLow:
			stats.LowStock++
		case domain.StockOut:
			stats.OutOfStock++
		}
		stats.InventoryValue += d.TotalValue()
	}
	return stats, nil
}
