package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/interfaces/http/response"
	"agro-chain.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup handles account creation
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, authResponse)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
			return
		}
		response.Error(c, err)
		return
	}

	if authResponse.AccessToken != "" {
		c.SetCookie("token", authResponse.AccessToken, 3600*24, "/", "", false, true)
		c.SetCookie("refresh_token", authResponse.RefreshToken, 3600*24*7, "/", "", false, true)
	}

	response.Success(c, http.StatusOK, authResponse)
}
