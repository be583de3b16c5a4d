// File: internal/services/conversation_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/abudi-09/Chat-App/internal/domain"
	"github.com/abudi-09/Chat-App/internal/repository/conversation"
	"github.com/abudi-09/Chat-App/internal/services/messaging"
)

// ConversationService keeps the per-pair conversation summary in step with
// the message stream. The snapshot is a projection recomputed on every
// write, not by a background job.
type ConversationService struct {
	config   *messaging.Config
	convRepo conversation.ConversationRepository
	logger   Logger
}

func NewConversationService(convRepo conversation.ConversationRepository, logger Logger) (*ConversationService, error) {
	if convRepo == nil {
		return nil, messaging.NewValidationError("constructor", "conversation repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	config := messaging.DefaultConfig()
	if err := config.Validate(); err != nil {
		return nil, messaging.NewValidationError("config", err.Error())
	}

	return &ConversationService{
		config:   config,
		convRepo: convRepo,
		logger:   logger,
	}, nil
}

// Sync finds or lazily creates the dm conversation for the pair and
// rewrites its lastMessage snapshot. Last write wins: two concurrent sends
// between the same pair leave the snapshot of whichever sync committed
// last, regardless of the messages' own creation order.
func (s *ConversationService) Sync(ctx context.Context, userA, userB uint, text, imageURL string, messageCreatedAt time.Time) (*domain.Conversation, error) {
	if userA == 0 || userB == 0 {
		return nil, messaging.NewValidationError("sync", "both participants are required")
	}
	if userA == userB {
		return nil, messaging.NewValidationError("sync", "a conversation needs two distinct participants")
	}

	conv, err := s.convRepo.FindDirectByParticipants(ctx, userA, userB)
	if errors.Is(err, conversation.ErrConversationNotFound) {
		conv, err = s.convRepo.CreateDirect(ctx, userA, userB)
	}
	if err != nil {
		return nil, messaging.NewPersistenceError("sync", "could not find or create conversation", err)
	}

	snapshot := domain.LastMessage{
		Text:      truncateRunes(text, s.config.MaxSnapshotTextLength),
		Image:     imageURL,
		CreatedAt: messageCreatedAt,
	}
	if err := s.convRepo.UpdateSnapshot(ctx, conv.ID, snapshot); err != nil {
		return nil, messaging.NewPersistenceError("sync", "could not update conversation snapshot", err)
	}

	return s.convRepo.FindByIDWithParticipants(ctx, conv.ID)
}

// ListForUser returns the caller's inbox, most recently active first, with
// participants resolved to display-level summaries.
func (s *ConversationService) ListForUser(ctx context.Context, userID uint) ([]domain.Conversation, error) {
	if userID == 0 {
		return nil, messaging.NewValidationError("list", "user ID is required")
	}
	convs, err := s.convRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, messaging.NewPersistenceError("list", "could not load conversations", err)
	}
	return convs, nil
}

// FindOrCreate backs explicit conversation creation from the inbox UI. A
// brand-new conversation starts with an empty snapshot stamped now so it
// sorts to the top of the inbox.
func (s *ConversationService) FindOrCreate(ctx context.Context, userID, targetUserID uint) (*domain.Conversation, error) {
	if targetUserID == 0 {
		return nil, messaging.NewValidationError("find_or_create", "targetUserId is required")
	}
	if userID == targetUserID {
		return nil, messaging.NewValidationError("find_or_create", "cannot start a conversation with yourself")
	}

	conv, err := s.convRepo.FindDirectByParticipants(ctx, userID, targetUserID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, conversation.ErrConversationNotFound) {
		return nil, messaging.NewPersistenceError("find_or_create", "could not look up conversation", err)
	}

	conv, err = s.convRepo.CreateDirect(ctx, userID, targetUserID)
	if err != nil {
		return nil, messaging.NewPersistenceError("find_or_create", "could not create conversation", err)
	}
	if err := s.convRepo.UpdateSnapshot(ctx, conv.ID, domain.LastMessage{CreatedAt: time.Now()}); err != nil {
		s.logger.Warn("could not stamp new conversation snapshot", "conversation_id", conv.ID, "error", err)
	}
	return s.convRepo.FindByIDWithParticipants(ctx, conv.ID)
}

// truncateRunes caps s at limit characters, not bytes, so multi-byte text
// is never split mid-rune.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
