package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
)

// SetupWebSocketRouter sets up the notification stream. Auth happens
// inside the handler via the token query parameter.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws/notifications", wsHandler.Subscribe)
}
