// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/abudi-09/Chat-App/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create - validates input and logs without exposing message bodies.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if err := r.validateMessageInput(message); err != nil {
		log.Printf("[MessageRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := r.db.WithContext(ctx).Create(message).Error
	if err != nil {
		// Secure logging - no message content exposed
		log.Printf("[MessageRepository] Database error during message creation (sender %d -> receiver %d): %v",
			message.SenderID, message.ReceiverID, err)
		return nil, errors.New("database error creating message")
	}

	log.Printf("[MessageRepository] Message created successfully with ID: %d (sender %d -> receiver %d)",
		message.ID, message.SenderID, message.ReceiverID)
	return message, nil
}

func (r *gormMessageRepository) FindByID(ctx context.Context, messageID uint) (*domain.Message, error) {
	if messageID == 0 {
		return nil, errors.New("invalid message ID")
	}

	var msg domain.Message
	err := r.db.WithContext(ctx).First(&msg, messageID).Error
	if err == nil {
		return &msg, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	log.Printf("[MessageRepository] FindByID database error: %v", err)
	return nil, errors.New("database query failed")
}

// FindBetweenUsers - WARNING: loads the whole pair history into memory.
// Use FindBetweenUsersWithPagination for large conversations.
func (r *gormMessageRepository) FindBetweenUsers(ctx context.Context, userA, userB uint) ([]domain.Message, error) {
	if userA == 0 || userB == 0 {
		return nil, errors.New("invalid user ID")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where(r.pairCondition(userA, userB)).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error finding messages between users %d and %d: %v", userA, userB, err)
		return nil, errors.New("database error fetching messages")
	}
	return messages, nil
}

// FindBetweenUsersWithPagination - memory safety for long histories.
func (r *gormMessageRepository) FindBetweenUsersWithPagination(ctx context.Context, userA, userB uint, limit, offset int) ([]domain.Message, int64, error) {
	if userA == 0 || userB == 0 {
		return nil, 0, errors.New("invalid user ID")
	}
	if limit <= 0 || limit > 1000 {
		return nil, 0, errors.New("invalid limit: must be between 1 and 1000")
	}
	if offset < 0 {
		return nil, 0, errors.New("invalid offset: must be >= 0")
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where(r.pairCondition(userA, userB)).
		Count(&total).Error; err != nil {
		log.Printf("[MessageRepository] Database error counting messages between users %d and %d: %v", userA, userB, err)
		return nil, 0, errors.New("database error counting messages")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where(r.pairCondition(userA, userB)).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error in paginated query between users %d and %d: %v", userA, userB, err)
		return nil, 0, errors.New("database error retrieving paginated messages")
	}
	return messages, total, nil
}

func (r *gormMessageRepository) CountBetweenUsers(ctx context.Context, userA, userB uint) (int64, error) {
	if userA == 0 || userB == 0 {
		return 0, errors.New("invalid user ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where(r.pairCondition(userA, userB)).
		Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages between users %d and %d: %v", userA, userB, err)
		return 0, errors.New("database error counting messages")
	}
	return count, nil
}

// pairCondition matches messages flowing in either direction between the pair.
func (r *gormMessageRepository) pairCondition(userA, userB uint) *gorm.DB {
	return r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	)
}

// ===== VALIDATION HELPERS =====

func (r *gormMessageRepository) validateMessageInput(message *domain.Message) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}
	if message.SenderID == 0 {
		return errors.New("sender ID is required")
	}
	if message.ReceiverID == 0 {
		return errors.New("receiver ID is required")
	}
	if message.Text == "" && message.Image == "" {
		return errors.New("message text or image required")
	}
	return nil
}
