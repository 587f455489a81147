package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/repository"
	"github.com/trakline/crm_backend/service"
	"github.com/trakline/crm_backend/utils"
)

var (
	enquiryService = service.NewEnquiryService(repository.NewEnquiryStore(), repository.NewCustomerStore())
	taskService    = service.NewTaskService(repository.NewTaskStore())

	// flagStore holds the local notification-flag fallback for rows whose
	// persisted flag is absent
	flagStore = service.NewLocalFlagStore()
)

// GetEnquiryList lists enquiries, newest first, with optional filters.
func GetEnquiryList(c *gin.Context) {
	filter := models.EnquiryFilter{
		AssignedTo: models.Assignee(c.Query("assignedTo")),
		Status:     models.Status(c.Query("status")),
		CustomerID: c.Query("customerId"),
		FromDate:   c.Query("fromDate"),
		ToDate:     c.Query("toDate"),
	}

	if filter.AssignedTo != "" && !filter.AssignedTo.IsValid() {
		utils.ErrorResponse(c, "unknown assignee", http.StatusBadRequest)
		return
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		utils.ErrorResponse(c, "unknown status", http.StatusBadRequest)
		return
	}

	enquiries, err := enquiryService.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"count":      len(enquiries),
		"assignedTo": filter.AssignedTo,
	}, "enquiry list fetched")

	utils.SuccessResponse(c, enquiries, "")
}

// CreateEnquiry logs a new enquiry, resolving or creating the customer.
func CreateEnquiry(c *gin.Context) {
	var req models.EnquiryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	enquiry, err := enquiryService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"enquiryId":  enquiry.ID.Hex(),
		"customerId": enquiry.CustomerID,
		"status":     enquiry.Status,
	}, "enquiry created")

	utils.SuccessResponse(c, enquiry, "enquiry created", http.StatusCreated)
}

// UpdateEnquiry applies a partial update to an enquiry.
func UpdateEnquiry(c *gin.Context) {
	id := c.Param("id")

	var req models.EnquiryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	enquiry, err := enquiryService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, enquiry, "enquiry updated")
}

// SetNotificationFlag marks an enquiry in the local fallback flag store.
func SetNotificationFlag(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, "enquiry id is required", http.StatusBadRequest)
		return
	}
	flagStore.Set(id)
	utils.SuccessResponse(c, nil, "notification flag set")
}

// ClearNotificationFlag removes an enquiry from the local fallback store.
func ClearNotificationFlag(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, "enquiry id is required", http.StatusBadRequest)
		return
	}
	flagStore.Clear(id)
	utils.SuccessResponse(c, nil, "notification flag cleared")
}
