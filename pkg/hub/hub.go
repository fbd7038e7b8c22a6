// Package hub provides a thread-safe websocket broadcast hub using the
// channel-based fan-out pattern. go-pup uses it to stream motion
// telemetry to any number of dashboard or tooling clients.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/openpup/go-pup/internal/log"
)

// Hub maintains the set of active clients and broadcasts JSON payloads
// to them.
type Hub struct {
	name string

	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// New creates a hub. Run must be started in a goroutine before
// clients connect.
func New(name string) *Hub {
	return &Hub{
		name:       name,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("telemetry client connected", "hub", h.name, "clients", count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("telemetry client disconnected", "hub", h.name, "clients", count)

		case payload := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Client can't keep up with the emission rate;
					// drop it rather than stall the broadcast.
					close(client.send)
					delete(h.clients, client)
					log.Warn("dropped slow telemetry client", "hub", h.name)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a payload for all connected clients. Telemetry is
// best-effort: when the channel is full the payload is dropped.
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	default:
	}
}

// BroadcastJSON encodes and broadcasts a value.
func (h *Hub) BroadcastJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(data)
	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
