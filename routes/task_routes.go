package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trakline/crm_backend/controllers"
)

// RegisterTaskRoutes registers task routes.
func RegisterTaskRoutes(router *gin.Engine) {
	taskRoutes := router.Group("/api/tasks")

	taskRoutes.GET("/", controllers.GetTaskList)
	taskRoutes.POST("/", controllers.CreateTask)
	taskRoutes.PUT("/:id", controllers.UpdateTask)
	taskRoutes.PATCH("/:id", controllers.UpdateTask)
	taskRoutes.DELETE("/:id", controllers.DeleteTask)
}
