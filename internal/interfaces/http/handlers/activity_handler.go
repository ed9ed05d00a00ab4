package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/interfaces/http/middleware"
	"agro-chain.backend/internal/interfaces/http/response"
	"agro-chain.backend/internal/usecases"
)

// ActivityHandler handles activity feed endpoints
type ActivityHandler struct {
	activities *usecases.ActivityUsecase
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activities *usecases.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
	}
}

// Feed handles fetching the caller's activity feed
// GET /api/v1/activities
func (h *ActivityHandler) Feed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	feed, err := h.activities.FeedFor(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"activities": feed})
}

// MarkRead handles flagging feed entries as read
// POST /api/v1/activities/read
func (h *ActivityHandler) MarkRead(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ids := make([]uuid.UUID, 0, len(input.IDs))
	for _, raw := range input.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid activity ID"))
			return
		}
		ids = append(ids, id)
	}

	if err := h.activities.MarkRead(c.Request.Context(), ids); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Marked as read"})
}
