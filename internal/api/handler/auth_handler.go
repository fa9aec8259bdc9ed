package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/api/metrics"
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService ports.AuthService
	access      ports.AccessController
}

func NewAuthHandler(authService ports.AuthService, access ports.AccessController) *AuthHandler {
	return &AuthHandler{authService: authService, access: access}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token           string           `json:"token"`
	Username        string           `json:"username"`
	Role            string           `json:"role"`
	CurrentSection  domain.Section   `json:"current_section"`
	AllowedSections []domain.Section `json:"allowed_sections"`
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	session, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues(loginFailureReason(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(session.Role.String()).Inc()
	metrics.ActiveSessions.Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:           token,
		Username:        session.Username,
		Role:            session.Role.String(),
		CurrentSection:  session.CurrentSection,
		AllowedSections: h.access.AllowedSections(session.Role),
	})
}

// Logout ends the caller's session. The bearer token stops resolving
// immediately; a token outliving its session is worthless.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), session.ID); err != nil {
		return err
	}

	metrics.ActiveSessions.Dec()
	return c.NoContent(http.StatusNoContent)
}

func loginFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCredentials):
		return "empty_input"
	case errors.Is(err, domain.ErrUnknownUser):
		return "unknown_user"
	case errors.Is(err, domain.ErrWrongPassword):
		return "wrong_password"
	default:
		return "other"
	}
}
