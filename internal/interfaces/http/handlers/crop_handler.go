package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/interfaces/http/middleware"
	"agro-chain.backend/internal/interfaces/http/response"
	"agro-chain.backend/internal/usecases"
)

// CropHandler handles crop listing and lifecycle endpoints
type CropHandler struct {
	lifecycle   *usecases.LifecycleUsecase
	marketplace *usecases.MarketplaceUsecase
}

// NewCropHandler creates a new crop handler
func NewCropHandler(lifecycle *usecases.LifecycleUsecase, marketplace *usecases.MarketplaceUsecase) *CropHandler {
	return &CropHandler{
		lifecycle:   lifecycle,
		marketplace: marketplace,
	}
}

// Create handles listing a new crop
// POST /api/v1/crops
func (h *CropHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.AddCropInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	crop, err := h.lifecycle.AddCrop(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, crop)
}

// Get handles fetching a single crop
// GET /api/v1/crops/:id
func (h *CropHandler) Get(c *gin.Context) {
	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid crop ID"))
		return
	}

	crop, err := h.marketplace.GetCrop(c.Request.Context(), cropID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, crop)
}

// List handles listing crops, optionally filtered by status
// GET /api/v1/crops?status=pending
func (h *CropHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			response.Error(c, domainerrors.Unauthorized("Authentication required"))
			return
		}
		crops, err := h.marketplace.ListingsOf(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"crops": crops})
		return
	}

	crops, err := h.marketplace.CropsByStatus(c.Request.Context(), entities.CropStatus(status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"crops": crops})
}

// AvailableJobs handles listing approved crops with no transporter
// GET /api/v1/crops/jobs
func (h *CropHandler) AvailableJobs(c *gin.Context) {
	crops, err := h.marketplace.AvailableJobs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"crops": crops})
}

// MyJobs handles listing the crops assigned to the calling transporter
// GET /api/v1/crops/jobs/mine
func (h *CropHandler) MyJobs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	crops, err := h.marketplace.JobsOf(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"crops": crops})
}

// Approve handles warehouse approval of a pending crop
// POST /api/v1/crops/:id/approve
func (h *CropHandler) Approve(c *gin.Context) {
	h.transition(c, h.lifecycle.ApproveCrop)
}

// Reject handles warehouse rejection of a pending crop
// POST /api/v1/crops/:id/reject
func (h *CropHandler) Reject(c *gin.Context) {
	h.transition(c, h.lifecycle.RejectCrop)
}

// AcceptJob handles a transporter taking a delivery job
// POST /api/v1/crops/:id/accept-job
func (h *CropHandler) AcceptJob(c *gin.Context) {
	h.transition(c, h.lifecycle.AcceptJob)
}

// ConfirmPickup handles the assigned transporter confirming pickup
// POST /api/v1/crops/:id/confirm-pickup
func (h *CropHandler) ConfirmPickup(c *gin.Context) {
	h.transition(c, h.lifecycle.ConfirmPickup)
}

// MarkDelivered handles the assigned transporter marking delivery
// POST /api/v1/crops/:id/mark-delivered
func (h *CropHandler) MarkDelivered(c *gin.Context) {
	h.transition(c, h.lifecycle.MarkDelivered)
}

// ConfirmArrival handles warehouse confirmation and payment settlement
// POST /api/v1/crops/:id/confirm-arrival
func (h *CropHandler) ConfirmArrival(c *gin.Context) {
	userID, cropID, ok := h.actorAndCrop(c)
	if !ok {
		return
	}

	breakdown, err := h.lifecycle.ConfirmArrival(c.Request.Context(), userID, cropID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, breakdown)
}

// Purchase handles a customer buying a delivered crop
// POST /api/v1/crops/:id/purchase
func (h *CropHandler) Purchase(c *gin.Context) {
	userID, cropID, ok := h.actorAndCrop(c)
	if !ok {
		return
	}

	order, err := h.lifecycle.Purchase(c.Request.Context(), userID, cropID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *CropHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, actorID, cropID uuid.UUID) (*entities.Crop, error),
) {
	userID, cropID, ok := h.actorAndCrop(c)
	if !ok {
		return
	}

	crop, err := fn(c.Request.Context(), userID, cropID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, crop)
}

func (h *CropHandler) actorAndCrop(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return uuid.Nil, uuid.Nil, false
	}

	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid crop ID"))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, cropID, true
}
