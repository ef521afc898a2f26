package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"trueestate/pkg/logger"
)

// Client is one open notification stream.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub fans notifications out to connected clients. One goroutine owns the
// client map; handlers talk to it through the channels.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				if old, ok := h.clients[client.UserID]; ok && old != client {
					close(old.Send)
				}
				h.clients[client.UserID] = client
				h.mutex.Unlock()
				logger.Debug("Notification stream opened: %s", client.UserID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				// A stale connection's unregister must not evict the client
				// that replaced it.
				if current, ok := h.clients[client.UserID]; ok && current == client {
					delete(h.clients, client.UserID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Notification stream closed: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser pushes a payload to one user's stream, dropping the client if
// its buffer is full.
func (h *Hub) SendToUser(userID string, payload interface{}) {
	h.mutex.RLock()
	client, ok := h.clients[userID]
	h.mutex.RUnlock()

	if !ok {
		return
	}

	message, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal notification payload: %v", err)
		return
	}

	select {
	case client.Send <- message:
	default:
		h.mutex.Lock()
		delete(h.clients, userID)
		close(client.Send)
		h.mutex.Unlock()
	}
}

// ConnectedCount reports how many streams are open.
func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// ReadPump consumes inbound frames until the peer goes away, then
// unregisters the client. The stream is push-only; inbound payloads are
// discarded.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// WritePump drains the send channel onto the connection. Runs as the
// connection's writer goroutine.
func (c *Client) WritePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
