package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
	"vendio/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	vendorMiddleware *middleware.VendorMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	wsHandler *handler.WebSocketHandler,
) {
	SetupAuthRouter(e, authMiddleware, rateLimitMiddleware)
	SetupStoreRouter(e, authMiddleware, vendorMiddleware)
	SetupProductRouter(e, authMiddleware, vendorMiddleware)
	SetupBookingRouter(e)
	SetupOrderRouter(e, authMiddleware, vendorMiddleware)
	SetupCustomerRouter(e, authMiddleware, vendorMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupDashboardRouter(e, authMiddleware, vendorMiddleware)
	SetupSettingsRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e, wsHandler)
	SetupHealthRouter(e)
}
