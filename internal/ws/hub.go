// File: internal/ws/hub.go
package ws

import (
	"encoding/json"
	"sync"
)

// Hub owns the presence registry and the set of all open connections,
// including anonymous ones that never registered an identity.
type Hub struct {
	registry *Registry
	logger   Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub(logger Logger) *Hub {
	return &Hub{
		registry: NewRegistry(),
		logger:   logger,
		clients:  make(map[*Client]struct{}),
	}
}

func (h *Hub) Registry() *Registry {
	return h.registry
}

// Join adds the connection, registers identified users as online, and
// announces the new roster to everyone.
func (h *Hub) Join(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	if c.userID != 0 {
		h.registry.Register(c.userID, c)
	}
	h.logger.Debug("connection joined", "user_id", c.userID)
	h.BroadcastRoster()
}

// remove is the counterpart of Join, invoked from Client.Close. The
// registry entry is only dropped when this connection still owns it.
func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()

	if c.userID != 0 {
		h.registry.Deregister(c.userID, c)
	}
	h.logger.Debug("connection left", "user_id", c.userID)
	h.BroadcastRoster()
}

// BroadcastRoster sends the full online-ID set to every open connection,
// anonymous ones included. Every join and leave costs one broadcast; that
// is O(connections) per presence change, acceptable for a single-process
// registry.
func (h *Hub) BroadcastRoster() {
	payload, err := json.Marshal(RosterEvent(h.registry.Snapshot()))
	if err != nil {
		h.logger.Error("roster marshal failed", "error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.trySend(payload) {
			go c.Close()
		}
	}
}

// ClientCount reports the number of open connections, identified or not.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
