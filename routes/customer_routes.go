package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trakline/crm_backend/controllers"
)

// RegisterCustomerRoutes registers customer routes.
func RegisterCustomerRoutes(router *gin.Engine) {
	customerRoutes := router.Group("/api/customers")

	customerRoutes.GET("/", controllers.GetCustomerList)
	customerRoutes.GET("/by-number/:number", controllers.GetCustomerByNumber)
	customerRoutes.PUT("/:id", controllers.UpdateCustomer)
}
