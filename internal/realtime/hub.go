package realtime

import (
	"encoding/json"
	"sync"
)

// EventType names a change to the task table.
type EventType string

const (
	TaskCreated  EventType = "task_created"
	TaskUpdated  EventType = "task_updated"
	TaskDeleted  EventType = "task_deleted"
	TasksCleared EventType = "tasks_cleared"
)

// Event is pushed to subscribers after a committed change.
type Event struct {
	Type   EventType `json:"type"`
	TaskID uint      `json:"taskId,omitempty"`
}

// Client represents a single subscriber connection.
// The network connection itself is managed by the websocket handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub keeps the set of live subscribers and fans events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[Client]struct{})}
}

// Register adds a client.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Len returns the number of registered clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish encodes evt and sends it to every client. Clients whose send fails
// are dropped and closed.
func (h *Hub) Publish(evt Event) {
	message, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.mu.RLock()
	var failed []Client
	for c := range h.clients {
		if !c.Send(message) {
			failed = append(failed, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range failed {
		h.Unregister(c)
		c.Close()
	}
}
