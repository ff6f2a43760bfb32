package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/app/services"
	"github.com/medicamp/backend/internal/middleware"
)

// RegistrationController handles the registration lifecycle endpoints
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// CreateRegistration registers a participant for a camp
// @Summary Register for a camp
// @Description Stores the registration and increments the camp's participants counter
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationConfirmation} "Registration created"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed field"
// @Failure 404 {object} dto.ErrorResponse "Camp not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) CreateRegistration(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration payload").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	reg, err := c.registrationService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Registration successful",
		Data: dto.RegistrationConfirmation{
			RegistrationID:     reg.ID,
			CampID:             reg.CampID,
			CampName:           reg.CampName,
			ParticipantEmail:   reg.ParticipantEmail,
			PaymentStatus:      string(reg.PaymentStatus),
			ConfirmationStatus: string(reg.ConfirmationStatus),
		},
		Timestamp: time.Now(),
	})
}

// ListRegistrationsByParticipant returns a participant's registrations
// @Summary List registrations by participant
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param email path string true "Participant email"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registrations retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/participant/{email} [get]
func (c *RegistrationController) ListRegistrationsByParticipant(ctx *gin.Context) {
	regs, err := c.registrationService.ListByParticipant(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      regs,
		Timestamp: time.Now(),
	})
}

// ListRegistrationsByOrganizer returns registrations for an organizer's camps
// @Summary List registrations by organizer
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param email path string true "Organizer email"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registrations retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/organizer/{email} [get]
func (c *RegistrationController) ListRegistrationsByOrganizer(ctx *gin.Context) {
	regs, err := c.registrationService.ListByOrganizer(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      regs,
		Timestamp: time.Now(),
	})
}

// CancelRegistration cancels a registration
// @Summary Cancel registration
// @Description Deletes the registration and decrements the camp's participants counter
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse "Registration cancelled"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration ID"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) CancelRegistration(ctx *gin.Context) {
	if err := c.registrationService.Cancel(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Registration cancelled",
		Timestamp: time.Now(),
	})
}
