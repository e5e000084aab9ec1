package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
	"vendio/internal/adapter/api/middleware"
)

func SetupCustomerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, vendorMiddleware *middleware.VendorMiddleware) {
	customerHandler := handler.GetCustomerHandler()

	customers := e.Group("/v1/customers")
	customers.Use(authMiddleware.Authenticate)
	customers.Use(vendorMiddleware.VendorOnly)
	customers.GET("", customerHandler.ListCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
}
