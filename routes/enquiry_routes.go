package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trakline/crm_backend/controllers"
)

// RegisterEnquiryRoutes registers enquiry routes. There is deliberately no
// DELETE: enquiries are never removed, only closed as Won or Loss.
func RegisterEnquiryRoutes(router *gin.Engine) {
	enquiryRoutes := router.Group("/api/enquiries")

	enquiryRoutes.GET("/", controllers.GetEnquiryList)
	enquiryRoutes.POST("/", controllers.CreateEnquiry)
	enquiryRoutes.PUT("/:id", controllers.UpdateEnquiry)
	enquiryRoutes.POST("/:id/notification-flag", controllers.SetNotificationFlag)
	enquiryRoutes.DELETE("/:id/notification-flag", controllers.ClearNotificationFlag)
}
