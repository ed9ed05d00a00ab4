package repositories

import (
	"context"

	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
)

// MessageRepository defines message data operations
type MessageRepository interface {
	Create(ctx context.Context, msg *entities.Message) error
	GetConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entities.Message, error)
	// MarkConversationRead flags every message sent by fromUserID to toUserID
	// as read. The opener's own messages are never touched.
	MarkConversationRead(ctx context.Context, fromUserID, toUserID uuid.UUID) error
	CountUnread(ctx context.Context, toUserID uuid.UUID) (int, error)
}
