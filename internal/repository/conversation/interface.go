// File: internal/repository/conversation/interface.go
package conversation

import (
	"context"

	"github.com/abudi-09/Chat-App/internal/domain"
)

// ConversationRepository handles conversation summary records.
type ConversationRepository interface {
	// CreateDirect creates a dm conversation for the pair and returns it
	// with participants loaded.
	CreateDirect(ctx context.Context, userA, userB uint) (*domain.Conversation, error)
	// FindDirectByParticipants returns the dm conversation whose
	// participant set is exactly {userA, userB}, order-independent.
	// Conversations with more than two participants never match.
	FindDirectByParticipants(ctx context.Context, userA, userB uint) (*domain.Conversation, error)
	FindByIDWithParticipants(ctx context.Context, id uint) (*domain.Conversation, error)
	// FindByUserID lists every conversation the user participates in,
	// most recently active first.
	FindByUserID(ctx context.Context, userID uint) ([]domain.Conversation, error)
	// UpdateSnapshot overwrites the lastMessage preview and touches
	// updatedAt in a single statement.
	UpdateSnapshot(ctx context.Context, conversationID uint, snapshot domain.LastMessage) error
}
