package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/interfaces/http/middleware"
	"agro-chain.backend/internal/interfaces/http/response"
	"agro-chain.backend/internal/usecases"
)

// MessageHandler handles private messaging endpoints
type MessageHandler struct {
	messages *usecases.MessageUsecase
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages *usecases.MessageUsecase) *MessageHandler {
	return &MessageHandler{
		messages: messages,
	}
}

// Send handles sending a message to a connected user
// POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	toUserID, err := uuid.Parse(input.ToUserID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid target user ID"))
		return
	}

	msg, err := h.messages.SendMessage(c.Request.Context(), userID, toUserID, input.Body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

// Conversation handles opening a conversation with a peer. Opening marks the
// peer's messages as read.
// GET /api/v1/messages/:userId
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	peerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	msgs, err := h.messages.OpenConversation(c.Request.Context(), userID, peerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

// UnreadCount handles fetching the caller's unread message count
// GET /api/v1/messages/unread
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	count, err := h.messages.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread": count})
}
