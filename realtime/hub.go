// Package realtime fans table-change events out to websocket subscribers.
// Shoppers receive events for their own rows; admin connections receive
// every order event for the back-office dashboard.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event mirrors one committed row change.
type Event struct {
	Table     string `json:"table"`  // "cart_items", "favorite_items", "orders"
	Action    string `json:"action"` // "INSERT", "UPDATE", "DELETE"
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id,omitempty"`
	OrderID   uint   `json:"order_id,omitempty"`
}

const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

type Hub struct {
	mu    sync.RWMutex
	users map[uint]map[*websocket.Conn]bool
	// admin connections, keyed to the user id they registered under so a
	// failed write can unregister them exactly
	admins map[*websocket.Conn]uint
}

func NewHub() *Hub {
	return &Hub{
		users:  make(map[uint]map[*websocket.Conn]bool),
		admins: make(map[*websocket.Conn]uint),
	}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.users[userID] == nil {
		h.users[userID] = make(map[*websocket.Conn]bool)
	}
	h.users[userID][conn] = true
}

func (h *Hub) RegisterAdmin(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.admins[conn] = userID
}

func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns := h.users[userID]; conns != nil {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.users, userID)
		}
	}
	delete(h.admins, conn)
}

// Publish sends ev to every connection of the affected user, plus all admin
// connections for order events. Connections that fail to write are dropped.
func (h *Hub) Publish(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	targets := make(map[*websocket.Conn]uint, 4)
	for conn := range h.users[ev.UserID] {
		targets[conn] = ev.UserID
	}
	if ev.Table == "orders" {
		for conn, owner := range h.admins {
			if _, ok := targets[conn]; !ok {
				targets[conn] = owner
			}
		}
	}
	h.mu.RUnlock()

	for conn, owner := range targets {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Debug().Err(err).Msg("dropping dead websocket client")
			h.Unregister(owner, conn)
			conn.Close()
		}
	}
}

// Subscribers reports how many connections are registered for a user.
func (h *Hub) Subscribers(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}
