package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/utils"
)

// GetTaskList lists tasks, optionally filtered by assignee.
func GetTaskList(c *gin.Context) {
	assignedTo := models.Assignee(c.Query("assignedTo"))
	if assignedTo != "" && !assignedTo.IsValid() {
		utils.ErrorResponse(c, "unknown assignee", http.StatusBadRequest)
		return
	}

	tasks, err := taskService.List(c.Request.Context(), assignedTo)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, tasks, "")
}

// CreateTask creates a pending task.
func CreateTask(c *gin.Context) {
	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	task, err := taskService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, task, "task created", http.StatusCreated)
}

// UpdateTask applies a partial update, including status transitions.
func UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var req models.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	task, err := taskService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, task, "task updated")
}

// DeleteTask removes a task. Any referenced enquiry is untouched.
func DeleteTask(c *gin.Context) {
	id := c.Param("id")

	if err := taskService.Delete(c.Request.Context(), id); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, "task not found", http.StatusNotFound)
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "task deleted")
}
