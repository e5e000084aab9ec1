package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
	"vendio/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/stores", adminHandler.ListStores)
	admin.GET("/disputes", adminHandler.ListDisputes)
	admin.GET("/stats", adminHandler.GetPlatformStats)
}
