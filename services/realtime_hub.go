package services

import (
	"encoding/json"
	"sync"

	"backend/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub pushes new notifications to connected participants over
// websockets.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastNotification sends the notification to every connected client.
// Audience filtering happens on read; the live push is informational.
func (h *RealtimeHub) BroadcastNotification(n *models.Notification) {
	payload := map[string]any{
		"type":     "notification",
		"id":       n.ID,
		"title":    n.Title,
		"message":  n.Message,
		"category": n.Category,
	}
	msg, _ := json.Marshal(payload)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for c := range set {
			_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
		}
	}
}
