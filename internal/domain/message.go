// File: internal/domain/message.go
package domain

import "time"

// Message is a single direct message between two users. Messages are
// append-only: once created they are never mutated or deleted by the
// messaging core.
type Message struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	SenderID   uint      `json:"senderId" gorm:"not null;index"`
	ReceiverID uint      `json:"receiverId" gorm:"not null;index"`
	Text       string    `json:"text"`
	Image      string    `json:"image"` // public URL of an uploaded image, empty when text-only
	CreatedAt  time.Time `json:"createdAt"`
}
