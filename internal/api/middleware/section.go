package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upsaclinic/clinic-admin/internal/api/metrics"
	"github.com/upsaclinic/clinic-admin/internal/core/domain"
	"github.com/upsaclinic/clinic-admin/internal/core/ports"
)

// Section guards a route group behind role-based access to one clinic
// section. On an allowed request the caller's session is moved to the
// section, so navigation state always reflects the last screen the user
// reached. Denials never change the current section.
func Section(nav ports.Navigator, section domain.Section) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(SessionKey).(*domain.Session)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}

			view, err := nav.Navigate(c.Request().Context(), session.ID, section)
			if err != nil {
				var denied *domain.AccessDeniedError
				if errors.As(err, &denied) {
					metrics.AccessDeniedTotal.WithLabelValues(string(denied.Section), string(denied.Role)).Inc()
				}
				return err
			}

			metrics.NavigationsTotal.WithLabelValues(string(view.CurrentSection)).Inc()
			session.CurrentSection = view.CurrentSection
			return next(c)
		}
	}
}
