package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/trueproject/capstone/internal/app/controllers"
	"github.com/trueproject/capstone/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	teamController *controllers.TeamController,
	userController *controllers.UserController,
	teacherController *controllers.TeacherController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Team routes
	teams := v1.Group("/teams")
	{
		teams.POST("", teamController.RegisterTeam)
		teams.GET("/by-member/:email", teamController.GetTeamByMemberEmail)
	}

	// User profile routes
	users := v1.Group("/users")
	{
		users.GET("/:email", userController.GetUserByEmail)
	}

	// Teacher roster routes
	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.ListTeachers)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
