package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/api/metrics"
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// NavigationHandler exposes the session's navigation state directly, for
// clients that drive their own menu instead of hitting section routes.
type NavigationHandler struct {
	nav ports.Navigator
}

func NewNavigationHandler(nav ports.Navigator) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

type navigateRequest struct {
	Section string `json:"section" validate:"required"`
}

// Current returns the caller's current section and allowed sections.
//
// @Summary      Current navigation state
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.NavigationView
// @Failure      401  {object}  errorResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Current(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.nav.Current(c.Request().Context(), session.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Navigate moves the caller to another section, subject to role access.
//
// @Summary      Navigate to a section
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      navigateRequest  true  "Target section"
// @Success      200   {object}  ports.NavigationView
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/navigation [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	section, err := domain.ParseSection(req.Section)
	if err != nil {
		return err
	}

	view, err := h.nav.Navigate(c.Request().Context(), session.ID, section)
	if err != nil {
		var denied *domain.AccessDeniedError
		if errors.As(err, &denied) {
			metrics.AccessDeniedTotal.WithLabelValues(string(denied.Section), string(denied.Role)).Inc()
		}
		return err
	}

	metrics.NavigationsTotal.WithLabelValues(string(view.CurrentSection)).Inc()
	session.CurrentSection = view.CurrentSection
	return c.JSON(http.StatusOK, view)
}
