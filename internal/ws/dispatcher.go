// File: internal/ws/dispatcher.go
package ws

import (
	"encoding/json"

	"github.com/abudi-09/Chat-App/internal/domain"
)

// EventDispatcher delivers directed events to a user's live connection.
// Delivery is best effort and at most once: offline receivers are silently
// skipped, and a full outbound buffer is treated the same as a dead
// connection. There is no queueing or replay; missed events are recovered
// by the client refetching over HTTP.
type EventDispatcher struct {
	registry *Registry
	logger   Logger
}

func NewEventDispatcher(registry *Registry, logger Logger) *EventDispatcher {
	return &EventDispatcher{registry: registry, logger: logger}
}

func (d *EventDispatcher) DeliverNewMessage(userID uint, msg *domain.Message) {
	d.deliver(userID, NewMessageEvent(msg))
}

func (d *EventDispatcher) DeliverConversationUpdated(userID uint, conv *domain.Conversation) {
	d.deliver(userID, ConversationUpdatedEvent(conv))
}

func (d *EventDispatcher) deliver(userID uint, ev Envelope) {
	client, ok := d.registry.Lookup(userID)
	if !ok {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		d.logger.Error("event marshal failed", "event", ev.Event, "error", err)
		return
	}

	if !client.trySend(payload) {
		d.logger.Warn("dropping event for stalled connection", "user_id", userID, "event", ev.Event)
		go client.Close()
	}
}
