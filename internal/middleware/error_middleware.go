package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers delegate
// every error path here so the taxonomy stays in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		if field := apperrors.FieldOf(err); field != "" {
			detail = detail.WithField(field)
		}
		c.JSON(400, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrCampNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Camp not found")))

	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Registration not found")))

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrPaymentProvider):
		// Provider message is passed through for diagnostics
		c.JSON(500, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, err.Error())))

	default:
		// Store and other unexpected errors; original message kept in details
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithDetails(err.Error())
		c.JSON(500, dto.NewErrorResponse(detail))
	}
}
