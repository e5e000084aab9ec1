package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
	"vendio/internal/adapter/api/middleware"
)

func SetupSettingsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	settingsHandler := handler.GetSettingsHandler()

	settings := e.Group("/v1/settings")
	settings.Use(authMiddleware.Authenticate)
	settings.GET("", settingsHandler.GetSettings)
}
