package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// DrugStore is the in-memory pharmacy inventory.
type DrugStore struct {
	mu    sync.RWMutex
	drugs map[string]*domain.Drug
	seq   int
}

var _ ports.DrugRepository = (*DrugStore)(nil)

// NewDrugStore returns a store seeded with the demo inventory.
func NewDrugStore() *DrugStore {
	s := &DrugStore{drugs: make(map[string]*domain.Drug), seq: 1000}
	for _, d := range seedDrugs() {
		s.drugs[d.ID] = d
		s.seq++
	}
	return s
}

func seedDrugs() []*domain.Drug {
	return []*domain.Drug{
		{
			ID: "DRUG-1001", Name: "Paracetamol 500mg", Category: "Analgesics",
			Quantity: 120, UnitPrice: 0.50, Expiry: date(2026, 3, 1), Supplier: "MediCorp Ghana",
		},
		{
			ID: "DRUG-1002", Name: "Amoxicillin 250mg", Category: "Antibiotics",
			Quantity: 50, UnitPrice: 1.20, Expiry: date(2025, 11, 11), Supplier: "PharmaPlus Ltd",
		},
		{
			ID: "DRUG-1003", Name: "Vitamin C 1000mg", Category: "Vitamins",
			Quantity: 200, UnitPrice: 2.50, Expiry: date(2026, 12, 15), Supplier: "HealthSupplies Inc",
		},
		{
			ID: "DRUG-1004", Name: "Insulin Syringes", Category: "Medical Supplies",
			Quantity: 15, UnitPrice: 0.80, Expiry: date(2027, 1, 20), Supplier: "Local Supplier",
		},
		{
			ID: "DRUG-1005", Name: "Ibuprofen 400mg", Category: "Analgesics",
			Quantity: 0, UnitPrice: 0.75, Expiry: date(2025, 9, 30), Supplier: "MediCorp Ghana",
		},
	}
}

func (s *DrugStore) List(_ context.Context) ([]*domain.Drug, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Drug, 0, len(s.drugs))
	for _, d := range s.drugs {
		clone := *d
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *DrugStore) Find(_ context.Context, id string) (*domain.Drug, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drugs[id]
	if !ok {
		return nil, domain.ErrDrugNotFound
	}
	clone := *d
	return &clone, nil
}

func (s *DrugStore) Create(_ context.Context, d *domain.Drug) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	d.ID = fmt.Sprintf("DRUG-%d", s.seq)
	clone := *d
	s.drugs[d.ID] = &clone
	return nil
}

func (s *DrugStore) Update(_ context.Context, d *domain.Drug) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drugs[d.ID]; !ok {
		return domain.ErrDrugNotFound
	}
	clone := *d
	s.drugs[d.ID] = &clone
	return nil
}

func (s *DrugStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drugs[id]; !ok {
		return domain.ErrDrugNotFound
	}
	delete(s.drugs, id)
	return nil
}
