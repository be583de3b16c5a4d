// File: internal/ws/handler.go
package ws

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client connects from a different origin in development.
	// Restrict this in production deployments.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and runs the connection lifecycle: register
// presence when an identity was supplied, announce the roster, pump until
// disconnect. Identity comes from the userId query parameter; a missing or
// malformed value yields an anonymous connection, never an error.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	userID := parseUserID(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(hub, userID, conn)
	hub.Join(c)

	go c.writePump()
	go c.readPump()
}

func parseUserID(r *http.Request) uint {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
