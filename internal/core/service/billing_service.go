package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// BillingService implements the billing section.
type BillingService struct {
	repo ports.InvoiceRepository
	log  zerolog.Logger
}

func NewBillingService(repo ports.InvoiceRepository, log zerolog.Logger) *BillingService {
	return &BillingService{repo: repo, log: log}
}

func (s *BillingService) ListInvoices(ctx context.Context, query string) ([]*domain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if matchesQuery(query, inv.InvoiceNo, inv.Patient, inv.Service, string(inv.Status), inv.Insurance) {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}

func (s *BillingService) CreateInvoice(ctx context.Context, in ports.CreateInvoiceInput) (*domain.Invoice, error) {
	status := in.Status
	if status == "" {
		status = domain.InvoiceUnpaid
	}
	invoice := &domain.Invoice{
		Patient:   in.Patient,
		Service:   in.Service,
		Date:      in.Date,
		Amount:    in.Amount,
		Status:    status,
		DueDate:   in.DueDate,
		Insurance: in.Insurance,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	s.log.Info().Str("invoice_no", invoice.InvoiceNo).Float64("amount", in.Amount).Msg("invoice created")
	return invoice, nil
}

func (s *BillingService) SetStatus(ctx context.Context, invoiceNo string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	invoice, err := s.repo.Find(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	invoice.Status = status
	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	s.log.Info().Str("invoice_no", invoiceNo).Str("status", string(status)).Msg("invoice status changed")
	return invoice, nil
}

func (s *BillingService) DeleteInvoice(ctx context.Context, invoiceNo string) error {
	return s.repo.Delete(ctx, invoiceNo)
}

// Stats recomputes the billing aggregates with one pass over all invoices.
func (s *BillingService) Stats(ctx context.Context) (*domain.BillingStats, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.BillingStats{}
	for _, inv := range invoices {
		stats.Accumulate(inv)
	}
	return stats, nil
}
