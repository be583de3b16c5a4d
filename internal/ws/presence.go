// File: internal/ws/presence.go
package ws

import (
	"sort"
	"sync"
)

// Registry maps online user IDs to their single live connection. A user
// reconnecting from a new tab overwrites the previous entry, so at most
// one connection per user receives directed events.
type Registry struct {
	mu      sync.RWMutex
	entries map[uint]*Client
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint]*Client)}
}

// Register binds the connection as the user's current one, replacing any
// previous binding.
func (r *Registry) Register(userID uint, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[userID] = c
}

// Deregister removes the user's entry only if c is still the connection
// currently held. A late disconnect callback from a superseded connection
// must not clobber the newer session.
func (r *Registry) Deregister(userID uint, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries[userID] == c {
		delete(r.entries, userID)
	}
}

// Lookup returns the user's live connection, if any.
func (r *Registry) Lookup(userID uint) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.entries[userID]
	return c, ok
}

// Snapshot returns the currently online user IDs, sorted for a
// deterministic roster payload.
func (r *Registry) Snapshot() []uint {
	r.mu.RLock()
	ids := make([]uint, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
