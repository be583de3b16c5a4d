// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/abudi-09/Chat-App/internal/domain"
)

// MessageRepository is an append-only store for direct messages. There is
// deliberately no update or delete on the send path.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, messageID uint) (*domain.Message, error)
	// FindBetweenUsers returns the full history between a pair in either
	// direction, ordered by creation time ascending.
	FindBetweenUsers(ctx context.Context, userA, userB uint) ([]domain.Message, error)
	FindBetweenUsersWithPagination(ctx context.Context, userA, userB uint, limit, offset int) ([]domain.Message, int64, error)
	CountBetweenUsers(ctx context.Context, userA, userB uint) (int64, error)
}
