package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// deniedResponse is the envelope for access denials. It carries the fields a
// client needs to render the denial: which section was refused, the caller's
// role, and which roles would have been allowed.
type deniedResponse struct {
	Error         string   `json:"error"`
	Section       string   `json:"section"`
	Role          string   `json:"role"`
	RequiredRoles []string `json:"required_roles"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders access denials with their full structured envelope.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var denied *domain.AccessDeniedError
		if errors.As(err, &denied) {
			required := make([]string, len(denied.Required))
			for i, r := range denied.Required {
				required[i] = r.String()
			}
			_ = c.JSON(http.StatusForbidden, deniedResponse{
				Error:         denied.Error(),
				Section:       string(denied.Section),
				Role:          denied.Role.String(),
				RequiredRoles: required,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmptyCredentials),
		errors.Is(err, domain.ErrUnknownSection):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrSessionRevoked):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrUnknownUser):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrPatientNotFound),
		errors.Is(err, domain.ErrDoctorNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrVitalsNotFound),
		errors.Is(err, domain.ErrBedNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrBedOccupied):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrAppointmentClosed),
		errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
