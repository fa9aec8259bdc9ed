package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// SettingsHandler handles HTTP requests for the clinic profile.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type updateSettingsRequest struct {
	ClinicName             string `json:"clinic_name"              validate:"required"`
	Address                string `json:"address"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"                    validate:"omitempty,email"`
	WorkingHours           string `json:"working_hours"`
	BedCapacity            int    `json:"bed_capacity"             validate:"required,gt=0"`
	AppointmentSlotMinutes int    `json:"appointment_slot_minutes" validate:"required,gt=0"`
}

// Get returns the clinic settings document.
//
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Settings
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Update replaces the clinic settings document.
//
// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateSettingsRequest  true  "Settings"
// @Success      200   {object}  domain.Settings
// @Failure      400   {object}  errorResponse
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s, err := h.service.Update(c.Request().Context(), domain.Settings{
		ClinicName:             req.ClinicName,
		Address:                req.Address,
		Phone:                  req.Phone,
		Email:                  req.Email,
		WorkingHours:           req.WorkingHours,
		BedCapacity:            req.BedCapacity,
		AppointmentSlotMinutes: req.AppointmentSlotMinutes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}
