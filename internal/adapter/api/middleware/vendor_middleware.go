package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vendio/internal/domain/entity"
	"vendio/internal/usecase"
)

type VendorMiddleware struct {
	sessions *usecase.SessionRegistry
}

func NewVendorMiddleware(sessions *usecase.SessionRegistry) *VendorMiddleware {
	return &VendorMiddleware{
		sessions: sessions,
	}
}

// VendorOnly requires a vendor session and resolves the active store id
// into the context for the handlers behind it.
func (m *VendorMiddleware) VendorOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		session, ok := m.sessions.Get(uid)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Session has ended")
		}

		if session.User.Role != entity.RoleVendor {
			return echo.NewHTTPError(http.StatusForbidden, "Vendor account required")
		}

		if session.ActiveStore == nil {
			return echo.NewHTTPError(http.StatusForbidden, "Complete onboarding to get a store first")
		}

		c.Set("store_id", session.ActiveStore.ID)
		return next(c)
	}
}
