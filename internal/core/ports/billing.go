package ports

import (
	"context"
	"time"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// InvoiceRepository defines storage operations for billing.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*domain.Invoice, error)
	Find(ctx context.Context, invoiceNo string) (*domain.Invoice, error)
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, invoiceNo string) error
}

// CreateInvoiceInput carries the fields of a new invoice.
type CreateInvoiceInput struct {
	Patient   string
	Service   string
	Date      time.Time
	Amount    float64
	Status    domain.InvoiceStatus
	DueDate   time.Time
	Insurance string
}

// BillingService defines use-case operations for the billing section.
type BillingService interface {
	ListInvoices(ctx context.Context, query string) ([]*domain.Invoice, error)
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error)
	// SetStatus moves an invoice to a new payment status.
	SetStatus(ctx context.Context, invoiceNo string, status domain.InvoiceStatus) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceNo string) error
	Stats(ctx context.Context) (*domain.BillingStats, error)
}
