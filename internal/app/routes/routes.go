package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/medicamp/backend/internal/app/controllers"
	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	campController *controllers.CampController,
	registrationController *controllers.RegistrationController,
	paymentController *controllers.PaymentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authController.IssueToken)
	}

	// --- Public user routes ---
	users := v1.Group("/users")
	{
		users.GET("/:email", userController.GetUser)
		users.GET("/:email/role", userController.GetUserRole)
		users.POST("", userController.CreateUser)
	}

	// --- Public camp catalog routes ---
	camps := v1.Group("/camps")
	{
		camps.GET("", campController.ListCamps)
		camps.GET("/:id", campController.GetCamp)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		usersProtected := authenticated.Group("/users")
		{
			usersProtected.PUT("/:email", userController.UpdateUser)

			// Full listing is admin-only
			usersAdminProtected := usersProtected.Group("")
			usersAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				usersAdminProtected.GET("", userController.ListUsers)
			}
		}

		// Camp mutations require the organizer role; ownership of individual
		// camps is not checked at this layer
		campsOrganizerProtected := authenticated.Group("/camps")
		campsOrganizerProtected.Use(authMiddleware.RoleRequired(string(models.RoleOrganizer), string(models.RoleAdmin)))
		{
			campsOrganizerProtected.POST("", campController.CreateCamp)
			campsOrganizerProtected.PUT("/:id", campController.UpdateCamp)
			campsOrganizerProtected.DELETE("/:id", campController.DeleteCamp)
			campsOrganizerProtected.GET("/organizer/:email", campController.ListCampsByOrganizer)
		}

		// Registration lifecycle
		registrations := authenticated.Group("/registrations")
		{
			registrations.POST("", registrationController.CreateRegistration)
			registrations.GET("/participant/:email", registrationController.ListRegistrationsByParticipant)
			registrations.DELETE("/:id", registrationController.CancelRegistration)

			registrationsOrganizerProtected := registrations.Group("")
			registrationsOrganizerProtected.Use(authMiddleware.RoleRequired(string(models.RoleOrganizer), string(models.RoleAdmin)))
			{
				registrationsOrganizerProtected.GET("/organizer/:email", registrationController.ListRegistrationsByOrganizer)
			}
		}

		// Payments
		payments := authenticated.Group("/payments")
		{
			payments.POST("/intent", paymentController.CreatePaymentIntent)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
