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
	"agro-chain.backend/pkg/utils"
)

// UserHandler handles account, directory, and ledger endpoints
type UserHandler struct {
	marketplace *usecases.MarketplaceUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(marketplace *usecases.MarketplaceUsecase) *UserHandler {
	return &UserHandler{
		marketplace: marketplace,
	}
}

// Me handles fetching the caller's own account
// GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	user, err := h.marketplace.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Directory handles listing users, optionally filtered by role
// GET /api/v1/users?role=farmer
func (h *UserHandler) Directory(c *gin.Context) {
	role := entities.UserRole(c.Query("role"))
	if role != "" && !role.Valid() {
		response.Error(c, domainerrors.BadRequest("Unknown role"))
		return
	}

	users, err := h.marketplace.Directory(c.Request.Context(), role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// Ledger handles fetching the caller's transaction history
// GET /api/v1/users/me/ledger?page=1&limit=50
func (h *UserHandler) Ledger(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid pagination parameters"))
		return
	}

	entries, meta, err := h.marketplace.LedgerOf(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"transactions": entries,
		"pagination":   meta,
	})
}

// Orders handles fetching the caller's purchase history
// GET /api/v1/users/me/orders
func (h *UserHandler) Orders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	orders, err := h.marketplace.OrdersOf(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// Settlement handles fetching the correlated ledger entries of one reference
// GET /api/v1/settlements/:ref
func (h *UserHandler) Settlement(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	entries, err := h.marketplace.SettlementEntries(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": entries})
}

// Get handles fetching a single user's public profile
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	user, err := h.marketplace.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
