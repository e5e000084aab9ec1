package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
	"vendio/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, vendorMiddleware *middleware.VendorMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	dashboard := e.Group("/v1/dashboard")
	dashboard.Use(authMiddleware.Authenticate)
	dashboard.Use(vendorMiddleware.VendorOnly)
	dashboard.GET("", dashboardHandler.GetDashboard)
}
