// Package ws implements the real-time notification boundary: a push
// channel keyed by user ID with no queuing, retry, or delivery guarantee.
package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds how long a single push may block on a slow client.
const writeWait = 10 * time.Second

// Hub tracks at most one websocket connection per user. Notifications to
// users without a connection are silently dropped.
type Hub struct {
	mu           sync.Mutex
	clients      map[uint64]*websocket.Conn
	writeTimeout time.Duration
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients:      make(map[uint64]*websocket.Conn),
		writeTimeout: writeWait,
	}
}

// Register binds a connection to a user ID, replacing any previous
// connection for that user.
func (h *Hub) Register(userID uint64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if previous, ok := h.clients[userID]; ok && previous != conn {
		previous.Close()
	}
	h.clients[userID] = conn
}

// Unregister removes the binding if conn is still the user's current
// connection. A stale connection does not evict its replacement.
func (h *Hub) Unregister(userID uint64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.clients[userID]; ok && current == conn {
		delete(h.clients, userID)
	}
}

// Connected reports whether the user currently has a connection.
func (h *Hub) Connected(userID uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, ok := h.clients[userID]
	return ok
}

// Notify pushes a JSON payload to the user if connected. Fire-and-forget:
// absent connections and write failures drop the notification.
func (h *Hub) Notify(userID uint64, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: failed to marshal notification for user %d: %v", userID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.clients[userID]
	if !ok {
		return
	}
	// A stalled client must not hold the hub lock past the deadline.
	conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("ws: failed to notify user %d: %v", userID, err)
	}
}
