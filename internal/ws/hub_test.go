// File: internal/ws/hub_test.go
package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rosterFrame struct {
	Event string `json:"event"`
	Data  []uint `json:"data"`
}

func startGateway(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(testLogger{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, w, r)
	}))
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readRoster(t *testing.T, conn *websocket.Conn) rosterFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame rosterFrame
	require.NoError(t, json.Unmarshal(payload, &frame))
	require.Equal(t, EventOnlineUsers, frame.Event)
	return frame
}

func TestJoinBroadcastsRosterToAllConnections(t *testing.T) {
	_, srv := startGateway(t)

	alice := dial(t, srv, "?userId=1")
	assert.Equal(t, []uint{1}, readRoster(t, alice).Data)

	bob := dial(t, srv, "?userId=2")
	assert.Equal(t, []uint{1, 2}, readRoster(t, bob).Data)
	assert.Equal(t, []uint{1, 2}, readRoster(t, alice).Data)
}

// A connection without a userId is anonymous: it never appears in the
// roster but still receives presence broadcasts.
func TestAnonymousConnectionReceivesRosterWithoutJoiningIt(t *testing.T) {
	hub, srv := startGateway(t)

	alice := dial(t, srv, "?userId=1")
	assert.Equal(t, []uint{1}, readRoster(t, alice).Data)

	anon := dial(t, srv, "")
	assert.Equal(t, []uint{1}, readRoster(t, anon).Data)

	dial(t, srv, "?userId=2")
	assert.Equal(t, []uint{1, 2}, readRoster(t, anon).Data)
	assert.NotContains(t, hub.Registry().Snapshot(), uint(0))
}

func TestDisconnectRemovesUserAndRebroadcasts(t *testing.T) {
	hub, srv := startGateway(t)

	alice := dial(t, srv, "?userId=1")
	assert.Equal(t, []uint{1}, readRoster(t, alice).Data)

	bob := dial(t, srv, "?userId=2")
	assert.Equal(t, []uint{1, 2}, readRoster(t, alice).Data)

	require.NoError(t, bob.Close())

	assert.Equal(t, []uint{1}, readRoster(t, alice).Data)
	assert.Eventually(t, func() bool {
		_, online := hub.Registry().Lookup(2)
		return !online
	}, 3*time.Second, 10*time.Millisecond)
}

func TestMalformedUserIDYieldsAnonymousConnection(t *testing.T) {
	hub, srv := startGateway(t)

	conn := dial(t, srv, "?userId=not-a-number")
	assert.Empty(t, readRoster(t, conn).Data)
	assert.Equal(t, 1, hub.ClientCount())
}
