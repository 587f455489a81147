package routes

import (
	"github.com/trakline/crm_backend/repository"
	"github.com/trakline/crm_backend/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes.
func RegisterRoutes(router *gin.Engine) {
	RegisterEnquiryRoutes(router)
	RegisterCustomerRoutes(router)
	RegisterTaskRoutes(router)
	RegisterDashboardRoutes(router)

	// health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// database status check
	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := repository.GetDatabaseStatus()
		if err != nil {
			utils.ErrorResponse(c, "db status: "+err.Error(), 500)
			return
		}
		c.JSON(200, status)
	})
}
