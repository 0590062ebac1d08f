package websocket

import (
	"sync"

	"github.com/arefin/procurehub-backend/pkg/logger"
)

// Client is one connected dashboard session.
type Client struct {
	Hub    *Hub
	Conn   *Conn
	UserID uint
	Send   chan []byte
}

// Hub fans order events out to connected dashboard sessions. A user may
// hold several sessions at once.
type Hub struct {
	clients    map[uint][]*Client
	register   chan *Client
	unregister chan *Client
	events     chan *Event

	mu sync.RWMutex
}

// Event is a payload addressed to one user, or to everyone when UserID
// is zero.
type Event struct {
	UserID  uint
	Payload []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint][]*Client),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		events:     make(chan *Event, 256),
	}
}

// Run processes registrations and event delivery. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			logger.Info("WebSocket client registered", map[string]interface{}{
				"user_id":  client.UserID,
				"sessions": len(h.clients[client.UserID]),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if list, ok := h.clients[client.UserID]; ok {
				next := make([]*Client, 0, len(list))
				for _, c := range list {
					if c != client {
						next = append(next, c)
					}
				}
				if len(next) == 0 {
					delete(h.clients, client.UserID)
				} else {
					h.clients[client.UserID] = next
				}
				close(client.Send)
			}
			h.mu.Unlock()
			logger.Debug("WebSocket client unregistered", map[string]interface{}{
				"user_id": client.UserID,
			})

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

func (h *Hub) deliver(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	targets := h.clients[event.UserID]
	if event.UserID == 0 {
		targets = nil
		for _, list := range h.clients {
			targets = append(targets, list...)
		}
	}

	for _, client := range targets {
		select {
		case client.Send <- event.Payload:
		default:
			// Slow consumer: drop the event rather than block the hub.
			logger.Warn("Dropping event for slow WebSocket client", map[string]interface{}{
				"user_id": client.UserID,
			})
		}
	}
}

// Register queues a client for registration.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Publish queues an event for delivery.
func (h *Hub) Publish(userID uint, payload []byte) {
	select {
	case h.events <- &Event{UserID: userID, Payload: payload}:
	default:
		logger.Warn("Event queue full, dropping notification", map[string]interface{}{
			"user_id": userID,
		})
	}
}
