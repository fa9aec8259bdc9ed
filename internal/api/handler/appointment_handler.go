package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the appointment book.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type scheduleAppointmentRequest struct {
	Date       string `json:"date"       validate:"required,datetime=2006-01-02"`
	Time       string `json:"time"       validate:"required"`
	Patient    string `json:"patient"    validate:"required"`
	Doctor     string `json:"doctor"     validate:"required"`
	Department string `json:"department" validate:"required"`
	Notes      string `json:"notes"`
}

type cancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type listAppointmentsResponse struct {
	Data  []*domain.Appointment   `json:"data"`
	Stats *ports.AppointmentStats `json:"stats"`
}

// List returns appointments matching the optional search query.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by ID, patient, doctor or department"
// @Success      200  {object}  listAppointmentsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.ListAppointments(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listAppointmentsResponse{Data: appointments, Stats: stats})
}

// Schedule books a new consultation.
//
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scheduleAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Schedule(c echo.Context) error {
	var req scheduleAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, _ := time.Parse(dateLayout, req.Date)
	a, err := h.service.Schedule(c.Request().Context(), ports.ScheduleAppointmentInput{
		Date:       date,
		Time:       req.Time,
		Patient:    req.Patient,
		Doctor:     req.Doctor,
		Department: req.Department,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// Complete closes a scheduled appointment as done.
//
// @Summary      Complete an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment ID (e.g. APT-2001)"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c echo.Context) error {
	a, err := h.service.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Cancel closes a scheduled appointment as cancelled.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true   "Appointment ID"
// @Param        body  body  cancelAppointmentRequest  false  "Cancellation reason"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	var req cancelAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	a, err := h.service.Cancel(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Delete removes an appointment from the book.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteAppointment(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
