package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans booking lifecycle events out to the dashboards subscribed to
// each hotel. A hotel can have any number of subscribers; a dead
// connection is dropped on its first failed write.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int64]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Subscribe(hotelID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[hotelID] == nil {
		h.subscribers[hotelID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[hotelID][conn] = true
}

func (h *Hub) Unsubscribe(hotelID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.subscribers[hotelID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.subscribers, hotelID)
		}
	}
	_ = conn.Close()
}

// PublishBookingEvent sends the event to every subscriber of the hotel.
func (h *Hub) PublishBookingEvent(hotelID int64, event any) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[hotelID]))
	for conn := range h.subscribers[hotelID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unsubscribe(hotelID, conn)
		}
	}
}

func (h *Hub) SubscriberCount(hotelID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[hotelID])
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for hotelID, conns := range h.subscribers {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.subscribers, hotelID)
	}
}
