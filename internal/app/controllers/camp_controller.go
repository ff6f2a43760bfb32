package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/app/services"
	"github.com/medicamp/backend/internal/middleware"
)

// CampController handles camp catalog operations
type CampController struct {
	campService *services.CampService
}

// NewCampController creates a new CampController
func NewCampController(campService *services.CampService) *CampController {
	return &CampController{campService: campService}
}

// ListCamps returns camps with optional descending sort and result cap
// @Summary List camps
// @Tags camps
// @Produce json
// @Param sort query string false "Sort field (name, fees, date, participants, createdAt), descending"
// @Param limit query int false "Maximum number of results, 0 for unlimited"
// @Success 200 {object} dto.APIResponse{data=[]models.Camp} "Camps retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid sort field or limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /camps [get]
func (c *CampController) ListCamps(ctx *gin.Context) {
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "limit must be a number").WithField("limit")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}
		limit = parsed
	}

	camps, err := c.campService.List(ctx, ctx.Query("sort"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      camps,
		Timestamp: time.Now(),
	})
}

// GetCamp returns a single camp by id
// @Summary Get camp by ID
// @Tags camps
// @Produce json
// @Param id path string true "Camp ID"
// @Success 200 {object} dto.APIResponse{data=models.Camp} "Camp retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid camp ID"
// @Failure 404 {object} dto.ErrorResponse "Camp not found"
// @Router /camps/{id} [get]
func (c *CampController) GetCamp(ctx *gin.Context) {
	camp, err := c.campService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      camp,
		Timestamp: time.Now(),
	})
}

// CreateCamp publishes a new camp
// @Summary Create camp
// @Tags camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampRequest true "Camp information"
// @Success 201 {object} dto.APIResponse{data=models.Camp} "Camp created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /camps [post]
func (c *CampController) CreateCamp(ctx *gin.Context) {
	var req dto.CreateCampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	camp, err := c.campService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Message:   "Camp created",
		Data:      camp,
		Timestamp: time.Now(),
	})
}

// UpdateCamp applies a partial patch to a camp
// @Summary Update camp
// @Tags camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Param request body dto.UpdateCampRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Camp updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Camp not found"
// @Router /camps/{id} [put]
func (c *CampController) UpdateCamp(ctx *gin.Context) {
	var req dto.UpdateCampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.campService.Update(ctx, ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Camp updated",
		Timestamp: time.Now(),
	})
}

// DeleteCamp removes a camp
// @Summary Delete camp
// @Tags camps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Success 200 {object} dto.APIResponse "Camp deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid camp ID"
// @Failure 404 {object} dto.ErrorResponse "Camp not found"
// @Router /camps/{id} [delete]
func (c *CampController) DeleteCamp(ctx *gin.Context) {
	if err := c.campService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Camp deleted",
		Timestamp: time.Now(),
	})
}

// ListCampsByOrganizer returns all camps published by an organizer
// @Summary List camps by organizer
// @Tags camps
// @Produce json
// @Security BearerAuth
// @Param email path string true "Organizer email"
// @Success 200 {object} dto.APIResponse{data=[]models.Camp} "Camps retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /camps/organizer/{email} [get]
func (c *CampController) ListCampsByOrganizer(ctx *gin.Context) {
	camps, err := c.campService.ListByOrganizer(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      camps,
		Timestamp: time.Now(),
	})
}
