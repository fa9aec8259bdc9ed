package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

type stubInvoiceRepo struct {
	invoices map[string]*domain.Invoice
	seq      int
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[string]*domain.Invoice), seq: 1000}
}

func (r *stubInvoiceRepo) List(_ context.Context) ([]*domain.Invoice, error) {
	out := make([]*domain.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		clone := *inv
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubInvoiceRepo) Find(_ context.Context, invoiceNo string) (*domain.Invoice, error) {
	inv, ok := r.invoices[invoiceNo]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) error {
	r.seq++
	inv.InvoiceNo = fmt.Sprintf("INV-%d", r.seq)
	clone := *inv
	r.invoices[inv.InvoiceNo] = &clone
	return nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *domain.Invoice) error {
	if _, ok := r.invoices[inv.InvoiceNo]; !ok {
		return domain.ErrInvoiceNotFound
	}
	clone := *inv
	r.invoices[inv.InvoiceNo] = &clone
	return nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, invoiceNo string) error {
	if _, ok := r.invoices[invoiceNo]; !ok {
		return domain.ErrInvoiceNotFound
	}
	delete(r.invoices, invoiceNo)
	return nil
}

func createTestInvoice(t *testing.T, svc *BillingService, amount float64, status domain.InvoiceStatus) *domain.Invoice {
	t.Helper()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	inv, err := svc.CreateInvoice(context.Background(), ports.CreateInvoiceInput{
		Patient: "Ama Serwaa",
		Service: "Consultation",
		Date:    date,
		Amount:  amount,
		Status:  status,
		DueDate: date.AddDate(0, 0, 14),
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	return inv
}

func TestBillingService_StatsMixedStatuses(t *testing.T) {
	svc := NewBillingService(newStubInvoiceRepo(), zerolog.Nop())
	createTestInvoice(t, svc, 120, domain.InvoicePaid)
	createTestInvoice(t, svc, 420, domain.InvoiceUnpaid)
	createTestInvoice(t, svc, 350, domain.InvoicePending)
	createTestInvoice(t, svc, 1500, domain.InvoicePartiallyPaid)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 4 || stats.Paid != 1 || stats.Unpaid != 1 || stats.Pending != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 870 {
		t.Fatalf("TotalRevenue = %.2f, want 870.00", stats.TotalRevenue)
	}
	if stats.PendingAmount != 1520 {
		t.Fatalf("PendingAmount = %.2f, want 1520.00", stats.PendingAmount)
	}
}

func TestBillingService_SetStatusMovesRevenue(t *testing.T) {
	svc := NewBillingService(newStubInvoiceRepo(), zerolog.Nop())
	inv := createTestInvoice(t, svc, 420, domain.InvoiceUnpaid)

	updated, err := svc.SetStatus(context.Background(), inv.InvoiceNo, domain.InvoicePaid)
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if updated.Status != domain.InvoicePaid {
		t.Fatalf("status = %s, want Paid", updated.Status)
	}

	stats, _ := svc.Stats(context.Background())
	if stats.TotalRevenue != 420 || stats.PendingAmount != 0 {
		t.Fatalf("unexpected stats after payment: %+v", stats)
	}
}

func TestBillingService_SetStatus_UnknownInvoice(t *testing.T) {
	svc := NewBillingService(newStubInvoiceRepo(), zerolog.Nop())

	if _, err := svc.SetStatus(context.Background(), "INV-9999", domain.InvoicePaid); !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestBillingService_CreateDefaultsToUnpaid(t *testing.T) {
	svc := NewBillingService(newStubInvoiceRepo(), zerolog.Nop())
	inv := createTestInvoice(t, svc, 100, "")
	if inv.Status != domain.InvoiceUnpaid {
		t.Fatalf("status = %s, want Unpaid", inv.Status)
	}
}
