package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
	"vendio/internal/adapter/api/middleware"
)

func SetupStoreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, vendorMiddleware *middleware.VendorMiddleware) {
	storeHandler := handler.GetStoreHandler()

	// Public storefront, addressed by slug
	e.GET("/v1/storefronts/:slug", storeHandler.GetStorefront)

	// Onboarding needs a session but not yet a store
	onboarding := e.Group("/v1/onboarding")
	onboarding.Use(authMiddleware.Authenticate)
	onboarding.POST("", storeHandler.CompleteOnboarding)

	myStore := e.Group("/v1/my-store")
	myStore.Use(authMiddleware.Authenticate)
	myStore.Use(vendorMiddleware.VendorOnly)
	myStore.GET("", storeHandler.GetMyStore)
	myStore.PUT("/theme", storeHandler.UpdateTheme)
}
