package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro-chain.backend/internal/domain/entities"
	"agro-chain.backend/internal/usecases"
)

type messageHandlerFixture struct {
	messages    *messageRepoStub
	connections *connectionRepoStub
	handler     *MessageHandler
}

func newMessageHandlerFixture() *messageHandlerFixture {
	messages := &messageRepoStub{}
	connections := &connectionRepoStub{}
	uc := usecases.NewMessageUsecase(messages, connections)
	return &messageHandlerFixture{
		messages:    messages,
		connections: connections,
		handler:     NewMessageHandler(uc),
	}
}

func TestMessageHandler_Send_NotConnected(t *testing.T) {
	f := newMessageHandlerFixture()
	fromID := uuid.New()
	toID := uuid.New()

	body := `{"toUserId":"` + toID.String() + `","body":"hello"}`
	c, rec := authedContext(http.MethodPost, "/api/v1/messages", body, fromID, entities.UserRoleFarmer)

	f.handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageHandler_Send_Success(t *testing.T) {
	f := newMessageHandlerFixture()
	fromID := uuid.New()
	toID := uuid.New()

	f.connections.getByPairFn = func(_ context.Context, a, b uuid.UUID) (*entities.Connection, error) {
		return &entities.Connection{ID: uuid.New(), UserAID: a, UserBID: b}, nil
	}

	body := `{"toUserId":"` + toID.String() + `","body":"is the wheat lot still available?"}`
	c, rec := authedContext(http.MethodPost, "/api/v1/messages", body, fromID, entities.UserRoleCustomer)

	f.handler.Send(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got entities.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fromID, got.FromUserID)
	assert.Equal(t, toID, got.ToUserID)
	assert.False(t, got.Read)
}

func TestMessageHandler_Conversation_MarksPeerMessagesRead(t *testing.T) {
	f := newMessageHandlerFixture()
	viewerID := uuid.New()
	peerID := uuid.New()

	f.messages.getConversationFn = func(_ context.Context, a, b uuid.UUID) ([]*entities.Message, error) {
		return []*entities.Message{
			{ID: uuid.New(), FromUserID: peerID, ToUserID: viewerID, Body: "hi"},
			{ID: uuid.New(), FromUserID: viewerID, ToUserID: peerID, Body: "hello"},
		}, nil
	}
	var markedFrom, markedTo uuid.UUID
	f.messages.markConversationReadFn = func(_ context.Context, fromUserID, toUserID uuid.UUID) error {
		markedFrom, markedTo = fromUserID, toUserID
		return nil
	}

	c, rec := authedContext(http.MethodGet, "/api/v1/messages/"+peerID.String(), "", viewerID, entities.UserRoleFarmer)
	c.Params = gin.Params{{Key: "userId", Value: peerID.String()}}

	f.handler.Conversation(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, peerID, markedFrom)
	assert.Equal(t, viewerID, markedTo)

	var got struct {
		Messages []*entities.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Messages, 2)
	assert.True(t, got.Messages[0].Read)
	assert.False(t, got.Messages[1].Read)
}

func TestMessageHandler_UnreadCount(t *testing.T) {
	f := newMessageHandlerFixture()
	userID := uuid.New()

	f.messages.countUnreadFn = func(_ context.Context, toUserID uuid.UUID) (int, error) {
		return 3, nil
	}

	c, rec := authedContext(http.MethodGet, "/api/v1/messages/unread", "", userID, entities.UserRoleFarmer)
	f.handler.UnreadCount(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Unread int `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Unread)
}
