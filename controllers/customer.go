package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/repository"
	"github.com/trakline/crm_backend/utils"
)

var customerStore = repository.NewCustomerStore()

// GetCustomerList lists all customers ordered by name.
func GetCustomerList(c *gin.Context) {
	customers, err := customerStore.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, customers, "")
}

// GetCustomerByNumber looks a customer up by contact number. An unknown
// number is a 404, not a server error: the client uses it to decide whether
// an enquiry will create a new customer.
func GetCustomerByNumber(c *gin.Context) {
	number := c.Param("number")

	customer, err := enquiryService.FindCustomerByNumber(c.Request.Context(), number)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if customer == nil {
		utils.ErrorResponse(c, "customer not found", http.StatusNotFound)
		return
	}

	utils.SuccessResponse(c, customer, "")
}

// UpdateCustomer applies a partial update to a customer record.
func UpdateCustomer(c *gin.Context) {
	id := c.Param("id")

	var req models.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.MeetingPerson != nil {
		fields["meetingPerson"] = *req.MeetingPerson
	}
	if len(fields) == 0 {
		utils.ErrorResponse(c, "empty patch", http.StatusBadRequest)
		return
	}

	customer, err := customerStore.Update(c.Request.Context(), id, fields)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if customer == nil {
		utils.ErrorResponse(c, "customer not found", http.StatusNotFound)
		return
	}

	utils.SuccessResponse(c, customer, "customer updated")
}
