package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// InvoiceStore is the in-memory billing ledger.
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice
	seq      int
}

var _ ports.InvoiceRepository = (*InvoiceStore)(nil)

// NewInvoiceStore returns a store seeded with the demo invoices.
func NewInvoiceStore() *InvoiceStore {
	s := &InvoiceStore{invoices: make(map[string]*domain.Invoice), seq: 1000}
	for _, inv := range seedInvoices() {
		s.invoices[inv.InvoiceNo] = inv
		s.seq++
	}
	return s
}

func seedInvoices() []*domain.Invoice {
	return []*domain.Invoice{
		{
			InvoiceNo: "INV-1001", Patient: "Ama Mensah", Service: "Consultation",
			Date: date(2025, 5, 12), Amount: 420, Status: domain.InvoiceUnpaid,
			DueDate: date(2025, 6, 12), Insurance: "NHIS",
		},
		{
			InvoiceNo: "INV-1002", Patient: "Kwame Ofori", Service: "Laboratory Test",
			Date: date(2025, 5, 11), Amount: 120, Status: domain.InvoicePaid,
			DueDate: date(2025, 6, 11), Insurance: "Private",
		},
		{
			InvoiceNo: "INV-1003", Patient: "Esi Boateng", Service: "X-Ray",
			Date: date(2025, 5, 10), Amount: 350, Status: domain.InvoicePending,
			DueDate: date(2025, 6, 10), Insurance: "Corporate",
		},
		{
			InvoiceNo: "INV-1004", Patient: "Yaa Addae", Service: "Ultrasound",
			Date: date(2025, 5, 9), Amount: 280, Status: domain.InvoicePaid,
			DueDate: date(2025, 6, 9), Insurance: "NHIS",
		},
		{
			InvoiceNo: "INV-1005", Patient: "Kofi Johnson", Service: "Surgery",
			Date: date(2025, 5, 8), Amount: 1500, Status: domain.InvoicePartiallyPaid,
			DueDate: date(2025, 6, 8), Insurance: "Private",
		},
	}
}

func (s *InvoiceStore) List(_ context.Context) ([]*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		clone := *inv
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNo < out[j].InvoiceNo })
	return out, nil
}

func (s *InvoiceStore) Find(_ context.Context, invoiceNo string) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (s *InvoiceStore) Create(_ context.Context, inv *domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	inv.InvoiceNo = fmt.Sprintf("INV-%d", s.seq)
	clone := *inv
	s.invoices[inv.InvoiceNo] = &clone
	return nil
}

func (s *InvoiceStore) Update(_ context.Context, inv *domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[inv.InvoiceNo]; !ok {
		return domain.ErrInvoiceNotFound
	}
	clone := *inv
	s.invoices[inv.InvoiceNo] = &clone
	return nil
}

func (s *InvoiceStore) Delete(_ context.Context, invoiceNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[invoiceNo]; !ok {
		return domain.ErrInvoiceNotFound
	}
	delete(s.invoices, invoiceNo)
	return nil
}
