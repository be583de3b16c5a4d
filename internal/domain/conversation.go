// File: internal/domain/conversation.go
package domain

import "time"

type ConversationType string

const (
	ConversationTypeDM      ConversationType = "dm"
	ConversationTypeGroup   ConversationType = "group"
	ConversationTypeChannel ConversationType = "channel"
)

// LastMessage is the denormalized preview of the most recently ingested
// message in a conversation. It is rewritten on every send and only ever
// read for inbox rendering.
type LastMessage struct {
	Text      string    `json:"text"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is the mutable per-pair summary record. A dm conversation
// has exactly two distinct participants; the pair is unordered.
type Conversation struct {
	ID           uint             `json:"id" gorm:"primarykey"`
	Type         ConversationType `json:"type" gorm:"type:text;not null;default:dm;index"`
	Participants []User           `json:"participants" gorm:"many2many:conversation_participants"`
	LastMessage  LastMessage      `json:"lastMessage" gorm:"embedded;embeddedPrefix:last_message_"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (c *Conversation) IsParticipant(userID uint) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}
