package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/domain/repositories"
	"agro-chain.backend/pkg/utils"
)

// MessageUsecase handles private messaging between connected users
type MessageUsecase struct {
	messageRepo    repositories.MessageRepository
	connectionRepo repositories.ConnectionRepository
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(
	messageRepo repositories.MessageRepository,
	connectionRepo repositories.ConnectionRepository,
) *MessageUsecase {
	return &MessageUsecase{
		messageRepo:    messageRepo,
		connectionRepo: connectionRepo,
	}
}

// SendMessage appends a message to a conversation. An active connection
// between the pair is required; there is no messaging outside the graph.
func (u *MessageUsecase) SendMessage(ctx context.Context, fromUserID, toUserID uuid.UUID, body string) (*entities.Message, error) {
	if fromUserID == toUserID {
		return nil, domainerrors.BadRequest("cannot message own account")
	}

	if _, err := u.connectionRepo.GetByPair(ctx, fromUserID, toUserID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NewError("users are not connected", domainerrors.ErrNotConnected)
		}
		return nil, err
	}

	msg := &entities.Message{
		ID:         utils.GenerateUUIDv7(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// OpenConversation returns the full conversation between the viewer and a
// peer and marks the peer's messages as read. The viewer's own messages are
// never touched.
func (u *MessageUsecase) OpenConversation(ctx context.Context, viewerID, peerID uuid.UUID) ([]*entities.Message, error) {
	msgs, err := u.messageRepo.GetConversation(ctx, viewerID, peerID)
	if err != nil {
		return nil, err
	}
	if err := u.messageRepo.MarkConversationRead(ctx, peerID, viewerID); err != nil {
		return nil, err
	}
	for _, m := range msgs {
		if m.ToUserID == viewerID {
			m.Read = true
		}
	}
	return msgs, nil
}

// UnreadCount returns how many messages addressed to a user are unread
func (u *MessageUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return u.messageRepo.CountUnread(ctx, userID)
}
