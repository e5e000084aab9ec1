package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vendio/internal/domain/entity"
	"vendio/internal/usecase"
)

type AdminMiddleware struct {
	sessions *usecase.SessionRegistry
}

func NewAdminMiddleware(sessions *usecase.SessionRegistry) *AdminMiddleware {
	return &AdminMiddleware{
		sessions: sessions,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		session, ok := m.sessions.Get(uid)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Session has ended")
		}

		if session.User.Role != entity.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
