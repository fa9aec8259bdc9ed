package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// PharmacyHandler handles HTTP requests for the drug inventory.
type PharmacyHandler struct {
	service ports.PharmacyService
}

func NewPharmacyHandler(service ports.PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{service: service}
}

type addDrugRequest struct {
	Name      string  `json:"name"       validate:"required"`
	Category  string  `json:"category"   validate:"required"`
	Quantity  int     `json:"quantity"   validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
	Expiry    string  `json:"expiry"     validate:"required,datetime=2006-01-02"`
	Supplier  string  `json:"supplier"`
}

type stockMovementRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type drugResponse struct {
	domain.Drug
	StockStatus domain.StockStatus `json:"stock_status"`
	TotalValue  float64            `json:"total_value"`
}

type listDrugsResponse struct {
	Data  []drugResponse       `json:"data"`
	Stats *ports.PharmacyStats `json:"stats"`
}

func toDrugResponse(d *domain.Drug) drugResponse {
	return drugResponse{Drug: *d, StockStatus: d.StockStatus(), TotalValue: d.TotalValue()}
}

// List returns inventory items matching the optional search query, with the
// derived stock status for each.
//
// @Summary      List drugs
// @Tags         pharmacy
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by name, ID, category or supplier"
// @Success      200  {object}  listDrugsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/pharmacy/drugs [get]
func (h *PharmacyHandler) List(c echo.Context) error {
	drugs, err := h.service.ListDrugs(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]drugResponse, 0, len(drugs))
	for _, d := range drugs {
		data = append(data, toDrugResponse(d))
	}
	return c.JSON(http.StatusOK, listDrugsResponse{Data: data, Stats: stats})
}

// Add puts a new item into the inventory.
//
// @Summary      Add a drug
// @Tags         pharmacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addDrugRequest  true  "Drug details"
// @Success      201   {object}  drugResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/pharmacy/drugs [post]
func (h *PharmacyHandler) Add(c echo.Context) error {
	var req addDrugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expiry, _ := time.Parse(dateLayout, req.Expiry)
	d, err := h.service.AddDrug(c.Request().Context(), ports.AddDrugInput{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Expiry:    expiry,
		Supplier:  req.Supplier,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDrugResponse(d))
}

// Dispense removes stock for a prescription.
//
// @Summary      Dispense a drug
// @Tags         pharmacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Drug ID (e.g. DRG-3001)"
// @Param        body  body  stockMovementRequest  true  "Quantity to dispense"
// @Success      200  {object}  drugResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/pharmacy/drugs/{id}/dispense [post]
func (h *PharmacyHandler) Dispense(c echo.Context) error {
	var req stockMovementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	d, err := h.service.Dispense(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDrugResponse(d))
}

// Restock adds stock from a delivery.
//
// @Summary      Restock a drug
// @Tags         pharmacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Drug ID"
// @Param        body  body  stockMovementRequest  true  "Quantity received"
// @Success      200  {object}  drugResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/pharmacy/drugs/{id}/restock [post]
func (h *PharmacyHandler) Restock(c echo.Context) error {
	var req stockMovementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	d, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDrugResponse(d))
}

// Delete removes an inventory item.
//
// @Summary      Delete a drug
// @Tags         pharmacy
// @Security     BearerAuth
// @Param        id  path  string  true  "Drug ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/pharmacy/drugs/{id} [delete]
func (h *PharmacyHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteDrug(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
