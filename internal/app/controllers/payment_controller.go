package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/app/services"
	"github.com/medicamp/backend/internal/middleware"
)

// PaymentController handles payment intent creation
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePaymentIntent asks the provider for a payment intent
// @Summary Create payment intent
// @Description Creates a card payment intent for a camp fee and returns the client secret
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentIntentRequest true "Payment details"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentIntentResponse} "Intent created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Payment provider error"
// @Router /payments/intent [post]
func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	clientSecret, err := c.paymentService.CreateIntent(ctx, *req.CampFees, req.ParticipantEmail, req.CampID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.PaymentIntentResponse{ClientSecret: clientSecret},
		Timestamp: time.Now(),
	})
}
