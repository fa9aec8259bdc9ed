package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// VitalsHandler handles HTTP requests for patient vitals readings.
type VitalsHandler struct {
	service ports.VitalsService
}

func NewVitalsHandler(service ports.VitalsService) *VitalsHandler {
	return &VitalsHandler{service: service}
}

type recordVitalsRequest struct {
	PatientID       string  `json:"patient_id"       validate:"required"`
	PatientName     string  `json:"patient_name"     validate:"required"`
	Temperature     float64 `json:"temperature"      validate:"required,gt=25,lt=45"`
	BloodPressure   string  `json:"blood_pressure"`
	HeartRate       int     `json:"heart_rate"       validate:"gte=0"`
	OxygenSat       int     `json:"oxygen_saturation" validate:"gte=0,lte=100"`
	RespiratoryRate int     `json:"respiratory_rate" validate:"gte=0"`
	WeightKg        float64 `json:"weight_kg"        validate:"gte=0"`
	HeightCm        float64 `json:"height_cm"        validate:"gte=0"`
}

type listVitalsResponse struct {
	Data  []*ports.VitalsView `json:"data"`
	Stats *ports.VitalsStats  `json:"stats"`
}

// List returns the latest reading per patient, with derived BMI and status.
//
// @Summary      List vitals
// @Tags         vitals
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by patient ID or name"
// @Success      200  {object}  listVitalsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/vitals [get]
func (h *VitalsHandler) List(c echo.Context) error {
	vitals, err := h.service.ListVitals(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listVitalsResponse{Data: vitals, Stats: stats})
}

// Record stores a vitals reading, replacing the patient's previous one.
//
// @Summary      Record vitals
// @Tags         vitals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordVitalsRequest  true  "Vitals reading"
// @Success      201   {object}  ports.VitalsView
// @Failure      400   {object}  errorResponse
// @Router       /v1/vitals [post]
func (h *VitalsHandler) Record(c echo.Context) error {
	var req recordVitalsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Record(c.Request().Context(), ports.RecordVitalsInput{
		PatientID:       req.PatientID,
		PatientName:     req.PatientName,
		Temperature:     req.Temperature,
		BloodPressure:   req.BloodPressure,
		HeartRate:       req.HeartRate,
		OxygenSat:       req.OxygenSat,
		RespiratoryRate: req.RespiratoryRate,
		WeightKg:        req.WeightKg,
		HeightCm:        req.HeightCm,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}
