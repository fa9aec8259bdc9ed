package domain

import (
	"errors"
	"time"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid          InvoiceStatus = "Paid"
	InvoiceUnpaid        InvoiceStatus = "Unpaid"
	InvoicePending       InvoiceStatus = "Pending"
	InvoicePartiallyPaid InvoiceStatus = "Partially Paid"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// Invoice is one billing row. Amount is in Ghana cedis.
type Invoice struct {
	InvoiceNo string        `json:"invoice_no"`
	Patient   string        `json:"patient"`
	Service   string        `json:"service"`
	Date      time.Time     `json:"date"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	DueDate   time.Time     `json:"due_date"`
	Insurance string        `json:"insurance"`
}

// BillingStats is the aggregate view recomputed after every mutation.
// A partially paid invoice contributes half its amount to revenue and half
// to the pending total.
type BillingStats struct {
	Total         int     `json:"total"`
	Paid          int     `json:"paid"`
	Unpaid        int     `json:"unpaid"`
	Pending       int     `json:"pending"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingAmount float64 `json:"pending_amount"`
}

// Accumulate folds one invoice into the running stats.
func (s *BillingStats) Accumulate(inv *Invoice) {
	s.Total++
	switch inv.Status {
	case InvoicePaid:
		s.Paid++
		s.TotalRevenue += inv.Amount
	case InvoiceUnpaid:
		s.Unpaid++
		s.PendingAmount += inv.Amount
	case InvoicePending:
		s.Pending++
		s.PendingAmount += inv.Amount
	case InvoicePartiallyPaid:
		s.Pending++
		s.TotalRevenue += inv.Amount / 2
		s.PendingAmount += inv.Amount / 2
	}
}
