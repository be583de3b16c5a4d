// File: internal/ws/events.go
package ws

import "github.com/abudi-09/Chat-App/internal/domain"

// Server-pushed event names. Clients switch on these; renaming one is a
// breaking protocol change.
const (
	EventOnlineUsers         = "getUsers"
	EventNewMessage          = "newMessage"
	EventConversationUpdated = "conversationUpdated"
)

// Envelope is the tagged wire format for every server-pushed event.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func RosterEvent(onlineIDs []uint) Envelope {
	return Envelope{Event: EventOnlineUsers, Data: onlineIDs}
}

func NewMessageEvent(msg *domain.Message) Envelope {
	return Envelope{Event: EventNewMessage, Data: msg}
}

func ConversationUpdatedEvent(conv *domain.Conversation) Envelope {
	return Envelope{Event: EventConversationUpdated, Data: conv}
}
