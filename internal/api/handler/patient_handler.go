package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// PatientHandler handles HTTP requests for the patient register.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type patientRequest struct {
	Name        string `json:"name"          validate:"required"`
	StudentNo   string `json:"student_no"    validate:"required"`
	Programme   string `json:"programme"     validate:"required"`
	Level       string `json:"level"`
	Gender      string `json:"gender"        validate:"required,oneof=Male Female"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	BloodGroup  string `json:"blood_group"`
	Genotype    string `json:"genotype"`
	Rhesus      string `json:"rhesus"`
	Phone       string `json:"phone"`
	Condition   string `json:"condition"`
	Status      string `json:"status"        validate:"omitempty,oneof=Active Inactive"`
}

type patientResponse struct {
	domain.Patient
	Age int `json:"age"`
}

type listPatientsResponse struct {
	Data  []patientResponse   `json:"data"`
	Stats *ports.PatientStats `json:"stats"`
}

func toPatientResponse(p *domain.Patient) patientResponse {
	return patientResponse{Patient: *p, Age: p.Age(time.Now())}
}

func (r patientRequest) toInput() ports.PatientInput {
	dob, _ := time.Parse(dateLayout, r.DateOfBirth)
	status := domain.PatientStatus(r.Status)
	if status == "" {
		status = domain.PatientActive
	}
	return ports.PatientInput{
		Name:        r.Name,
		StudentNo:   r.StudentNo,
		Programme:   r.Programme,
		Level:       r.Level,
		Gender:      r.Gender,
		DateOfBirth: dob,
		BloodGroup:  r.BloodGroup,
		Genotype:    r.Genotype,
		Rhesus:      r.Rhesus,
		Phone:       r.Phone,
		Condition:   r.Condition,
		Status:      status,
	}
}

// List returns patients matching the optional search query, plus the
// register's stats line.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search by name, ID, student number or programme"
// @Success      200  {object}  listPatientsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.ListPatients(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		data = append(data, toPatientResponse(p))
	}
	return c.JSON(http.StatusOK, listPatientsResponse{Data: data, Stats: stats})
}

// Get returns one patient by ID.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient ID (e.g. PAT-1001)"
// @Success      200  {object}  patientResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	p, err := h.service.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientResponse(p))
}

// Create registers a new patient.
//
// @Summary      Register a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      201   {object}  patientResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.CreatePatient(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPatientResponse(p))
}

// Update replaces a patient record.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Patient ID"
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      200   {object}  patientResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.UpdatePatient(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientResponse(p))
}

// Delete removes a patient record.
//
// @Summary      Delete a patient
// @Tags         patients
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePatient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
