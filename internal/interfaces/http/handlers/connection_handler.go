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

// ConnectionHandler handles connection request and graph endpoints
type ConnectionHandler struct {
	connections *usecases.ConnectionUsecase
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connections *usecases.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{
		connections: connections,
	}
}

// SendRequest handles sending a connection request
// POST /api/v1/connections/requests
func (h *ConnectionHandler) SendRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.SendConnectionRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	toUserID, err := uuid.Parse(input.ToUserID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid target user ID"))
		return
	}

	req, err := h.connections.SendRequest(c.Request.Context(), userID, toUserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req)
}

// PendingRequests handles listing requests addressed to the caller
// GET /api/v1/connections/requests
func (h *ConnectionHandler) PendingRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	reqs, err := h.connections.PendingRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}

// Accept handles accepting a pending request
// POST /api/v1/connections/requests/:id/accept
func (h *ConnectionHandler) Accept(c *gin.Context) {
	userID, requestID, ok := h.actorAndRequest(c)
	if !ok {
		return
	}

	conn, err := h.connections.AcceptRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, conn)
}

// Reject handles rejecting a pending request
// POST /api/v1/connections/requests/:id/reject
func (h *ConnectionHandler) Reject(c *gin.Context) {
	userID, requestID, ok := h.actorAndRequest(c)
	if !ok {
		return
	}

	if err := h.connections.RejectRequest(c.Request.Context(), userID, requestID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Request rejected"})
}

// List handles listing the caller's connections
// GET /api/v1/connections
func (h *ConnectionHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	conns, err := h.connections.ConnectionsOf(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"connections": conns})
}

func (h *ConnectionHandler) actorAndRequest(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return uuid.Nil, uuid.Nil, false
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request ID"))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, requestID, true
}
