// File: internal/services/message_service.go
package services

import (
	"context"
	"time"

	"github.com/abudi-09/Chat-App/internal/domain"
	"github.com/abudi-09/Chat-App/internal/repository/message"
	"github.com/abudi-09/Chat-App/internal/services/messaging"
)

// Uploader is the slice of the media service the ingestion path needs.
type Uploader interface {
	UploadImage(ctx context.Context, data string) (string, error)
}

// Dispatcher pushes events to live connections. Delivery is fire-and-forget
// and at-most-once: implementations never block the ingestion path and
// never report failures back to it.
type Dispatcher interface {
	DeliverNewMessage(userID uint, msg *domain.Message)
	DeliverConversationUpdated(userID uint, conv *domain.Conversation)
}

// ConversationSyncer is implemented by ConversationService.
type ConversationSyncer interface {
	Sync(ctx context.Context, userA, userB uint, text, imageURL string, messageCreatedAt time.Time) (*domain.Conversation, error)
}

// MessageService validates and persists inbound messages, keeps the
// conversation snapshot in sync, and fans the result out to live
// connections.
type MessageService struct {
	messageRepo   message.MessageRepository
	conversations ConversationSyncer
	uploader      Uploader
	dispatcher    Dispatcher
	logger        Logger
}

func NewMessageService(
	messageRepo message.MessageRepository,
	conversations ConversationSyncer,
	uploader Uploader,
	dispatcher Dispatcher,
	logger Logger,
) (*MessageService, error) {
	if messageRepo == nil {
		return nil, messaging.NewValidationError("constructor", "message repository is required")
	}
	if conversations == nil {
		return nil, messaging.NewValidationError("constructor", "conversation syncer is required")
	}
	if uploader == nil {
		return nil, messaging.NewValidationError("constructor", "media uploader is required")
	}
	if dispatcher == nil {
		return nil, messaging.NewValidationError("constructor", "dispatcher is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &MessageService{
		messageRepo:   messageRepo,
		conversations: conversations,
		uploader:      uploader,
		dispatcher:    dispatcher,
		logger:        logger,
	}, nil
}

// Send runs the full ingestion pipeline. The sender ID always comes from
// the authenticated caller, never from the request body.
//
// The pipeline is deliberately not transactional: the message write and the
// snapshot write are separate operations. A failure between them leaves an
// orphaned message whose conversation preview is stale; that window is
// accepted and logged rather than unwound.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uint, text, image string) (*domain.Message, *domain.Conversation, error) {
	if senderID == 0 {
		return nil, nil, messaging.NewValidationError("send", "sender is required")
	}
	if receiverID == 0 {
		return nil, nil, messaging.NewValidationError("send", "receiverId is required")
	}
	if senderID == receiverID {
		return nil, nil, messaging.NewValidationError("send", "cannot send a message to yourself")
	}
	if text == "" && image == "" {
		return nil, nil, messaging.NewValidationError("send", "message text or image required")
	}

	// Upload before persisting anything: a media-store failure must leave
	// no partial message behind.
	imageURL := ""
	if image != "" {
		url, err := s.uploader.UploadImage(ctx, image)
		if err != nil {
			return nil, nil, messaging.NewUpstreamError("send", "image upload failed", err)
		}
		imageURL = url
	}

	created, err := s.messageRepo.Create(ctx, &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Image:      imageURL,
	})
	if err != nil {
		return nil, nil, messaging.NewPersistenceError("send", "could not store message", err)
	}

	conv, err := s.conversations.Sync(ctx, senderID, receiverID, text, imageURL, created.CreatedAt)
	if err != nil {
		// Orphaned message: stored, but the conversation preview is now
		// stale until the next successful send between this pair.
		s.logger.Error("conversation sync failed after message persist",
			"message_id", created.ID,
			"sender_id", senderID,
			"receiver_id", receiverID,
			"error", err)
		return nil, nil, err
	}

	s.dispatcher.DeliverNewMessage(receiverID, created)
	s.dispatcher.DeliverConversationUpdated(receiverID, conv)
	s.dispatcher.DeliverConversationUpdated(senderID, conv)

	return created, conv, nil
}

// GetHistory returns the full message history between the caller and the
// other user, oldest first.
func (s *MessageService) GetHistory(ctx context.Context, userID, otherUserID uint) ([]domain.Message, error) {
	if userID == 0 || otherUserID == 0 {
		return nil, messaging.NewValidationError("history", "both user IDs are required")
	}
	msgs, err := s.messageRepo.FindBetweenUsers(ctx, userID, otherUserID)
	if err != nil {
		return nil, messaging.NewPersistenceError("history", "could not load messages", err)
	}
	return msgs, nil
}

// GetHistoryPage is the paginated variant for long-running conversations.
func (s *MessageService) GetHistoryPage(ctx context.Context, userID, otherUserID uint, limit, offset int) ([]domain.Message, int64, error) {
	if userID == 0 || otherUserID == 0 {
		return nil, 0, messaging.NewValidationError("history", "both user IDs are required")
	}
	msgs, total, err := s.messageRepo.FindBetweenUsersWithPagination(ctx, userID, otherUserID, limit, offset)
	if err != nil {
		return nil, 0, messaging.NewPersistenceError("history", "could not load messages", err)
	}
	return msgs, total, nil
}
