package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/infrastructure/models"
)

// MessageRepository implements message data operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message
func (r *MessageRepository) Create(ctx context.Context, msg *entities.Message) error {
	m := &models.Message{
		ID:         msg.ID,
		FromUserID: msg.FromUserID,
		ToUserID:   msg.ToUserID,
		Body:       msg.Body,
		Read:       msg.Read,
		CreatedAt:  msg.CreatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.ID = m.ID
	return nil
}

// GetConversation gets both directions of a pair's messages, oldest first
func (r *MessageRepository) GetConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error) {
	var ms []models.Message
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	msgs := make([]*entities.Message, 0, len(ms))
	for i := range ms {
		m := ms[i]
		msgs = append(msgs, &entities.Message{
			ID:         m.ID,
			FromUserID: m.FromUserID,
			ToUserID:   m.ToUserID,
			Body:       m.Body,
			Read:       m.Read,
			CreatedAt:  m.CreatedAt,
		})
	}
	return msgs, nil
}

// MarkConversationRead flags messages sent by fromUserID to toUserID as read
func (r *MessageRepository) MarkConversationRead(ctx context.Context, fromUserID, toUserID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Message{}).
		Where("from_user_id = ? AND to_user_id = ? AND read = ?", fromUserID, toUserID, false).
		Update("read", true).Error
}

// CountUnread counts unread messages addressed to a user
func (r *MessageRepository) CountUnread(ctx context.Context, toUserID uuid.UUID) (int, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Message{}).
		Where("to_user_id = ? AND read = ?", toUserID, false).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}
