package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// BillingHandler handles HTTP requests for invoices.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

type createInvoiceRequest struct {
	Patient   string  `json:"patient"   validate:"required"`
	Service   string  `json:"service"   validate:"required"`
	Date      string  `json:"date"      validate:"required,datetime=2006-01-02"`
	Amount    float64 `json:"amount"    validate:"required,gt=0"`
	Status    string  `json:"status"    validate:"omitempty,oneof=Paid Unpaid Pending 'Partially Paid'"`
	DueDate   string  `json:"due_date"  validate:"omitempty,datetime=2006-01-02"`
	Insurance string  `json:"insurance"`
}

type setInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Paid Unpaid Pending 'Partially Paid'"`
}

type listInvoicesResponse struct {
	Data  []*domain.Invoice    `json:"data"`
	Stats *domain.BillingStats `json:"stats"`
}

// List returns invoices matching the optional search query, plus revenue and
// pending totals.
//
// @Summary      List invoices
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by invoice number, patient or service"
// @Success      200  {object}  listInvoicesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/billing/invoices [get]
func (h *BillingHandler) List(c echo.Context) error {
	invoices, err := h.service.ListInvoices(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listInvoicesResponse{Data: invoices, Stats: stats})
}

// Create issues a new invoice.
//
// @Summary      Create an invoice
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  errorResponse
// @Router       /v1/billing/invoices [post]
func (h *BillingHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, _ := time.Parse(dateLayout, req.Date)
	dueDate := date.AddDate(0, 0, 14)
	if req.DueDate != "" {
		dueDate, _ = time.Parse(dateLayout, req.DueDate)
	}
	status := domain.InvoiceStatus(req.Status)
	if status == "" {
		status = domain.InvoiceUnpaid
	}

	inv, err := h.service.CreateInvoice(c.Request().Context(), ports.CreateInvoiceInput{
		Patient:   req.Patient,
		Service:   req.Service,
		Date:      date,
		Amount:    req.Amount,
		Status:    status,
		DueDate:   dueDate,
		Insurance: req.Insurance,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inv)
}

// SetStatus moves an invoice to a new payment status.
//
// @Summary      Update invoice payment status
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        invoice_no  path  string                   true  "Invoice number (e.g. INV-1001)"
// @Param        body        body  setInvoiceStatusRequest  true  "New status"
// @Success      200  {object}  domain.Invoice
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/billing/invoices/{invoice_no}/status [put]
func (h *BillingHandler) SetStatus(c echo.Context) error {
	var req setInvoiceStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.service.SetStatus(c.Request().Context(), c.Param("invoice_no"), domain.InvoiceStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}

// Delete removes an invoice.
//
// @Summary      Delete an invoice
// @Tags         billing
// @Security     BearerAuth
// @Param        invoice_no  path  string  true  "Invoice number"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/billing/invoices/{invoice_no} [delete]
func (h *BillingHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteInvoice(c.Request().Context(), c.Param("invoice_no")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
