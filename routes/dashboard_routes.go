package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trakline/crm_backend/controllers"
)

// RegisterDashboardRoutes registers dashboard routes.
func RegisterDashboardRoutes(router *gin.Engine) {
	dashboardRoutes := router.Group("/api/dashboard")

	dashboardRoutes.GET("/notifications", controllers.GetNotifications)
	dashboardRoutes.GET("/status-summary", controllers.GetStatusSummary)
	dashboardRoutes.GET("/stats", controllers.GetDashboardStats)
}
