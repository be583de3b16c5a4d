// File: internal/repository/conversation/conversation_repository.go
package conversation

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/abudi-09/Chat-App/internal/domain"
)

var ErrConversationNotFound = errors.New("conversation not found")

type gormConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &gormConversationRepository{db: db}
}

func (r *gormConversationRepository) CreateDirect(ctx context.Context, userA, userB uint) (*domain.Conversation, error) {
	if userA == 0 || userB == 0 {
		return nil, errors.New("invalid participant ID")
	}
	if userA == userB {
		return nil, errors.New("a dm conversation needs two distinct participants")
	}

	conv := &domain.Conversation{
		Type:         domain.ConversationTypeDM,
		Participants: []domain.User{{ID: userA}, {ID: userB}},
	}

	// Omit participant columns so only join rows are written; the user
	// records themselves are owned elsewhere.
	err := r.db.WithContext(ctx).Omit("Participants.*").Create(conv).Error
	if err != nil {
		log.Printf("[ConversationRepository] Database error creating dm conversation for users %d and %d: %v", userA, userB, err)
		return nil, errors.New("database error creating conversation")
	}

	log.Printf("[ConversationRepository] Conversation created successfully with ID: %d for users %d and %d", conv.ID, userA, userB)
	return r.FindByIDWithParticipants(ctx, conv.ID)
}

// FindDirectByParticipants uses an explicit cardinality check: the pair
// must cover two distinct participant rows AND the conversation must have
// exactly two participant rows in total. A group conversation that happens
// to contain both users can never match.
func (r *gormConversationRepository) FindDirectByParticipants(ctx context.Context, userA, userB uint) (*domain.Conversation, error) {
	if userA == 0 || userB == 0 {
		return nil, errors.New("invalid participant ID")
	}
	if userA == userB {
		return nil, errors.New("a dm conversation needs two distinct participants")
	}

	var conv domain.Conversation
	err := r.db.WithContext(ctx).
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("conversations.type = ?", domain.ConversationTypeDM).
		Where("cp.user_id IN ?", []uint{userA, userB}).
		Group("conversations.id").
		Having("COUNT(DISTINCT cp.user_id) = 2").
		Having("(SELECT COUNT(*) FROM conversation_participants total WHERE total.conversation_id = conversations.id) = 2").
		Preload("Participants").
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		log.Printf("[ConversationRepository] Database error finding dm conversation for users %d and %d: %v", userA, userB, err)
		return nil, errors.New("database query failed")
	}
	return &conv, nil
}

func (r *gormConversationRepository) FindByIDWithParticipants(ctx context.Context, id uint) (*domain.Conversation, error) {
	if id == 0 {
		return nil, errors.New("invalid conversation ID")
	}

	var conv domain.Conversation
	err := r.db.WithContext(ctx).Preload("Participants").First(&conv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		log.Printf("[ConversationRepository] FindByIDWithParticipants database error: %v", err)
		return nil, errors.New("database query failed")
	}
	return &conv, nil
}

func (r *gormConversationRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Conversation, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var convs []domain.Conversation
	err := r.db.WithContext(ctx).
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Order("conversations.last_message_created_at DESC, conversations.updated_at DESC").
		Preload("Participants").
		Find(&convs).Error
	if err != nil {
		log.Printf("[ConversationRepository] Database error listing conversations for user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching conversations")
	}
	return convs, nil
}

// UpdateSnapshot is last-write-wins: there is no compare against the
// currently stored snapshot timestamp, so under concurrent sends between
// the same pair the final preview is whichever write commits last. DM
// throughput per pair is low enough that this is an accepted trade-off.
func (r *gormConversationRepository) UpdateSnapshot(ctx context.Context, conversationID uint, snapshot domain.LastMessage) error {
	if conversationID == 0 {
		return errors.New("invalid conversation ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Conversation{}).
		Where("id = ?", conversationID).
		Updates(map[string]interface{}{
			"last_message_text":       snapshot.Text,
			"last_message_image":      snapshot.Image,
			"last_message_created_at": snapshot.CreatedAt,
			"updated_at":              time.Now(),
		})
	if result.Error != nil {
		log.Printf("[ConversationRepository] Database error updating snapshot for conversation ID %d: %v", conversationID, result.Error)
		return errors.New("database error updating conversation snapshot")
	}
	if result.RowsAffected == 0 {
		return ErrConversationNotFound
	}
	return nil
}
