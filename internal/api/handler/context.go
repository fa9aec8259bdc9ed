package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/api/middleware"
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails before any service call: a missing session means the route was
// mounted without the middleware or the token never resolved.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return session, nil
}
