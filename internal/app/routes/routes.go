package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ellarises/studygroup/internal/app/controllers"
	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	directoryController *controllers.DirectoryController,
	subjectController *controllers.SubjectController,
	donationController *controllers.DonationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	donations := v1.Group("/donations")
	{
		donations.POST("", donationController.RecordDonation)
	}

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
			profile.DELETE("", profileController.DeleteProfile)
		}

		authenticated.GET("/directory", directoryController.Search)

		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)

			subjectsManagerProtected := subjects.Group("")
			subjectsManagerProtected.Use(authMiddleware.RoleRequired(models.RoleManager, models.RoleAdmin))
			{
				subjectsManagerProtected.POST("", subjectController.CreateSubject)
			}
		}

		donationsManagerProtected := authenticated.Group("/donations")
		donationsManagerProtected.Use(authMiddleware.RoleRequired(models.RoleManager, models.RoleAdmin))
		{
			donationsManagerProtected.GET("", donationController.ListDonations)
		}
	}
}
