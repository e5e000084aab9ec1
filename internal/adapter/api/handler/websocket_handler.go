package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/middleware"
	ws "vendio/internal/infrastructure/websocket"
	"vendio/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager        *ws.Manager
	authMiddleware *middleware.AuthMiddleware
}

func NewWebSocketHandler(manager *ws.Manager, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		manager:        manager,
		authMiddleware: authMiddleware,
	}
}

// Subscribe upgrades the connection and streams notification events for
// the authenticated vendor until the peer goes away.
func (h *WebSocketHandler) Subscribe(c echo.Context) error {
	uid, err := h.authMiddleware.VerifyQueryToken(c)
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Websocket upgrade failed: %v", err)
		return err
	}

	client := &ws.Client{
		VendorID: uid,
		Conn:     conn,
		Send:     make(chan []byte, 256),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
