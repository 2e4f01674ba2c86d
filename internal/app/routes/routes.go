package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pravartak/mentorhub/internal/app/controllers"
	"github.com/pravartak/mentorhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	rosterController *controllers.RosterController,
	riskController *controllers.RiskController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.RegisterMentor)
		auth.POST("/login", authController.Login)
	}

	// --- Public diagnostics ---
	v1.GET("/health", healthController.Check)
	v1.GET("/model-info", riskController.ModelInfo)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Roster routes
		students := authenticated.Group("/students")
		{
			students.POST("", rosterController.AddStudent)
			students.GET("/:id", rosterController.GetStudent)
			students.PUT("/:id", rosterController.UpdateStudent)
		}

		mentors := authenticated.Group("/mentors")
		{
			mentors.GET("/:mentorId/students", rosterController.GetStudentsByMentor)
		}

		// Risk routes
		predict := authenticated.Group("/predict")
		{
			predict.POST("/dropout", riskController.PredictDropout)
			predict.POST("/risk", riskController.ScoreRisk)
		}
	}
}
