package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
	"vendio/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, vendorMiddleware *middleware.VendorMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public product detail and slot listing, used by the booking flow
	e.GET("/v1/products/:id", productHandler.GetProduct)
	e.GET("/v1/products/:id/slots", productHandler.ListSlots)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.Use(vendorMiddleware.VendorOnly)
	myProducts.GET("", productHandler.ListProducts)
	myProducts.POST("", productHandler.CreateProduct)
	myProducts.POST("/:id/slots", productHandler.CreateSlot)
	myProducts.DELETE("/:id/slots/:slotId", productHandler.DeleteSlot)
}
