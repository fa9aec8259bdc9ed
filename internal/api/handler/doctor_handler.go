package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// DoctorHandler handles HTTP requests for the doctor register.
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type doctorRequest struct {
	Name       string `json:"name"       validate:"required"`
	Speciality string `json:"speciality" validate:"required"`
	Department string `json:"department" validate:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email"      validate:"omitempty,email"`
	Schedule   string `json:"schedule"`
	Status     string `json:"status"     validate:"omitempty,oneof='Active' 'On Leave'"`
	Experience string `json:"experience"`
}

type listDoctorsResponse struct {
	Data  []*domain.Doctor   `json:"data"`
	Stats *ports.DoctorStats `json:"stats"`
}

func (r doctorRequest) toInput() ports.DoctorInput {
	status := domain.DoctorStatus(r.Status)
	if status == "" {
		status = domain.DoctorActive
	}
	return ports.DoctorInput{
		Name:       r.Name,
		Speciality: r.Speciality,
		Department: r.Department,
		Phone:      r.Phone,
		Email:      r.Email,
		Schedule:   r.Schedule,
		Status:     status,
		Experience: r.Experience,
	}
}

// List returns doctors matching the optional search query.
//
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by name, ID, speciality or department"
// @Success      200  {object}  listDoctorsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listDoctorsResponse{Data: doctors, Stats: stats})
}

// Get returns one doctor by ID.
//
// @Summary      Get a doctor
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Doctor ID (e.g. DOC-1001)"
// @Success      200  {object}  domain.Doctor
// @Failure      404  {object}  errorResponse
// @Router       /v1/doctors/{id} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
	d, err := h.service.GetDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Create adds a doctor to the register.
//
// @Summary      Add a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      doctorRequest  true  "Doctor details"
// @Success      201   {object}  domain.Doctor
// @Failure      400   {object}  errorResponse
// @Router       /v1/doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	d, err := h.service.CreateDoctor(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

// Update replaces a doctor record.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Doctor ID"
// @Param        body  body      doctorRequest  true  "Doctor details"
// @Success      200   {object}  domain.Doctor
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/doctors/{id} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	d, err := h.service.UpdateDoctor(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Delete removes a doctor record.
//
// @Summary      Delete a doctor
// @Tags         doctors
// @Security     BearerAuth
// @Param        id  path  string  true  "Doctor ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/doctors/{id} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteDoctor(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
