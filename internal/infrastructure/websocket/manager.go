package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"vendio/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is one connected dashboard session of a vendor. A vendor may
// have several clients open at once (multiple tabs); each gets every
// event for that vendor.
type Client struct {
	VendorID string
	Conn     *websocket.Conn
	Send     chan []byte
}

// Manager fans notification events out to the connected clients of each
// vendor.
type Manager struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine until ctx is done.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				m.mutex.Unlock()
				logger.Info("Notification client registered: vendor=%s", client.VendorID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Notification client unregistered: vendor=%s", client.VendorID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToVendor delivers a message to every connected client of a vendor.
// Slow clients are dropped rather than blocking the feed.
func (m *Manager) SendToVendor(vendorID string, message []byte) {
	m.mutex.RLock()
	stale := make([]*Client, 0)
	for client := range m.clients {
		if client.VendorID != vendorID {
			continue
		}
		select {
		case client.Send <- message:
		default:
			stale = append(stale, client)
		}
	}
	m.mutex.RUnlock()

	for _, client := range stale {
		m.Unregister <- client
	}
}

// ReadPump drains the connection; vendors only listen on this socket,
// so inbound frames are discarded. Exits on close or read error.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Notification socket error: %v", err)
			}
			break
		}
	}
}

// WritePump forwards queued messages to the connection and keeps it
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
