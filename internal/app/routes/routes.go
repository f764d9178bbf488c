package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/cms/internal/app/controllers"
)

// SetupRouter configures all application routes. Paths keep their trailing
// slash to match the published API contract.
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	userController *controllers.UserController,
) {
	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.GET("/", courseController.ListCourses)
		courses.POST("/", courseController.CreateCourse)
		courses.GET("/:id/", courseController.GetCourse)
		courses.DELETE("/:id/", courseController.DeleteCourse)
		courses.POST("/:id/add/", courseController.EnrollUser)
		courses.POST("/:id/assignment/", courseController.CreateAssignment)
	}

	users := api.Group("/users")
	{
		users.POST("/", userController.CreateUser)
		users.GET("/:id/", userController.GetUser)
	}

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
