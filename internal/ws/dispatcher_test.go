// File: internal/ws/dispatcher_test.go
package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abudi-09/Chat-App/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Warn(string, ...interface{})  {}

func TestDeliverToOfflineUserIsSilentNoOp(t *testing.T) {
	d := NewEventDispatcher(NewRegistry(), testLogger{})

	// Must not panic or block.
	d.DeliverNewMessage(99, &domain.Message{ID: 1, SenderID: 2, ReceiverID: 99, Text: "hi"})
}

func TestDeliverQueuesEnvelopeForOnlineUser(t *testing.T) {
	registry := NewRegistry()
	c := testClient()
	registry.Register(5, c)

	d := NewEventDispatcher(registry, testLogger{})
	d.DeliverNewMessage(5, &domain.Message{ID: 10, SenderID: 2, ReceiverID: 5, Text: "hello"})

	select {
	case payload := <-c.send:
		var env struct {
			Event string         `json:"event"`
			Data  domain.Message `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &env))
		assert.Equal(t, EventNewMessage, env.Event)
		assert.Equal(t, uint(10), env.Data.ID)
		assert.Equal(t, "hello", env.Data.Text)
	default:
		t.Fatal("expected an event on the client's send channel")
	}
}

func TestDeliverConversationUpdatedEnvelope(t *testing.T) {
	registry := NewRegistry()
	c := testClient()
	registry.Register(3, c)

	d := NewEventDispatcher(registry, testLogger{})
	d.DeliverConversationUpdated(3, &domain.Conversation{ID: 4})

	payload := <-c.send
	var env Envelope
	require.NoError(t, json.Unmarshal(payload, &env))
	assert.Equal(t, EventConversationUpdated, env.Event)
}

// A full outbound buffer is treated as a dead connection: the event is
// dropped and the connection torn down, without blocking the caller.
func TestDeliverToStalledConnectionDropsAndCloses(t *testing.T) {
	registry := NewRegistry()
	c := testClient()
	for len(c.send) < cap(c.send) {
		c.send <- []byte("backlog")
	}
	registry.Register(6, c)

	d := NewEventDispatcher(registry, testLogger{})

	done := make(chan struct{})
	go func() {
		d.DeliverNewMessage(6, &domain.Message{ID: 1, SenderID: 2, ReceiverID: 6, Text: "x"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deliver blocked on a stalled connection")
	}

	select {
	case <-c.done:
	case <-time.After(time.Second):
		t.Fatal("stalled connection was not closed")
	}
}
