package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "agro-chain.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors carry their own status; bare
// sentinels are mapped here so usecases can return them directly.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.NewAppError(statusFor(err), err.Error(), err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrInvalidState),
		errors.Is(err, domainerrors.ErrJobTaken):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrNotConnected),
		errors.Is(err, domainerrors.ErrSelfTarget):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrSignerUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
