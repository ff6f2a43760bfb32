package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/app/services"
	"github.com/medicamp/backend/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers returns all user records
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      users,
		Timestamp: time.Now(),
	})
}

// GetUser returns a single user by email
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{email} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      user,
		Timestamp: time.Now(),
	})
}

// GetUserRole returns just a user's role
// @Summary Get user role
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse{data=dto.RoleResponse} "Role retrieved"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{email}/role [get]
func (c *UserController) GetUserRole(ctx *gin.Context) {
	role, err := c.userService.GetRole(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.RoleResponse{Role: string(role)},
		Timestamp: time.Now(),
	})
}

// CreateUser stores a new user; duplicate emails are a no-op
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 200 {object} dto.APIResponse "User already exists"
// @Success 201 {object} dto.APIResponse{data=models.User} "User created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, created, err := c.userService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Message:   "already exists",
			Timestamp: time.Now(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Message:   "User created",
		Data:      user,
		Timestamp: time.Now(),
	})
}

// UpdateUser upserts a user's profile by email
// @Summary Update user profile (upsert)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param request body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.User} "Profile upserted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.Upsert(ctx, ctx.Param("email"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Profile updated",
		Data:      user,
		Timestamp: time.Now(),
	})
}
