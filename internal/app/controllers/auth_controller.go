package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/app/services"
	"github.com/medicamp/backend/internal/middleware"
)

// AuthController handles token issuing
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// IssueToken mints an API token for a signed-in user
// @Summary Issue API token
// @Description Issues a bearer token for a user already authenticated by the external sign-in provider
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "User email"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/token [post]
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	token, expiresIn, err := c.authService.IssueToken(ctx, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Timestamp: time.Now(),
	})
}
