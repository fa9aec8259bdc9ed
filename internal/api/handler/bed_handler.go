package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// BedHandler handles HTTP requests for bed management.
type BedHandler struct {
	service ports.BedService
}

func NewBedHandler(service ports.BedService) *BedHandler {
	return &BedHandler{service: service}
}

type assignBedRequest struct {
	BedNo       string `json:"bed_no"       validate:"required"`
	Ward        string `json:"ward"         validate:"required"`
	PatientID   string `json:"patient_id"   validate:"required"`
	PatientName string `json:"patient_name" validate:"required"`
	Diagnosis   string `json:"diagnosis"`
	Doctor      string `json:"doctor"`
	Severity    string `json:"severity"     validate:"omitempty,oneof=Low Medium High Critical"`
}

type transferBedRequest struct {
	NewWard  string `json:"new_ward"   validate:"required"`
	NewBedNo string `json:"new_bed_no" validate:"required"`
}

type listBedsResponse struct {
	Data  []*domain.Bed          `json:"data"`
	Stats *domain.OccupancyStats `json:"stats"`
}

// List returns occupied beds matching the optional search query, plus
// occupancy figures.
//
// @Summary      List occupied beds
// @Tags         beds
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by bed number, ward or patient"
// @Success      200  {object}  listBedsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/beds [get]
func (h *BedHandler) List(c echo.Context) error {
	beds, err := h.service.ListBeds(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listBedsResponse{Data: beds, Stats: stats})
}

// Assign admits a patient to a free bed.
//
// @Summary      Assign a bed
// @Tags         beds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignBedRequest  true  "Admission details"
// @Success      201   {object}  domain.Bed
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/beds [post]
func (h *BedHandler) Assign(c echo.Context) error {
	var req assignBedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	severity := domain.BedSeverity(req.Severity)
	if severity == "" {
		severity = domain.SeverityLow
	}

	b, err := h.service.Assign(c.Request().Context(), ports.AssignBedInput{
		BedNo:       req.BedNo,
		Ward:        req.Ward,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Diagnosis:   req.Diagnosis,
		Doctor:      req.Doctor,
		Severity:    severity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

// Discharge frees a bed.
//
// @Summary      Discharge a patient
// @Tags         beds
// @Security     BearerAuth
// @Param        bed_no  path  string  true  "Bed number (e.g. B-101)"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/beds/{bed_no} [delete]
func (h *BedHandler) Discharge(c echo.Context) error {
	if err := h.service.Discharge(c.Request().Context(), c.Param("bed_no")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Transfer moves an admitted patient to another ward and bed.
//
// @Summary      Transfer a patient
// @Tags         beds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bed_no  path  string              true  "Current bed number"
// @Param        body    body  transferBedRequest  true  "Destination"
// @Success      200  {object}  domain.Bed
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/beds/{bed_no}/transfer [post]
func (h *BedHandler) Transfer(c echo.Context) error {
	var req transferBedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b, err := h.service.Transfer(c.Request().Context(), c.Param("bed_no"), req.NewWard, req.NewBedNo)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}
