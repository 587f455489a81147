package service

import (
	"context"
	"time"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/utils"
)

// TaskStore persistence operations for tasks. Unlike enquiries, tasks are
// deletable.
type TaskStore interface {
	FindByID(ctx context.Context, id string) (*models.Task, error)
	Insert(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, assignedTo models.Assignee) ([]models.Task, error)
}

// TaskService task gateway. Tasks reference enquiries weakly: the
// enquiryId is relation and lookup only, nothing cascades.
type TaskService struct {
	tasks TaskStore
}

// NewTaskService creates a TaskService.
func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create inserts a new pending task.
func (s *TaskService) Create(ctx context.Context, req models.TaskCreateRequest) (*models.Task, error) {
	if req.Title == "" {
		return nil, utils.CreateBadRequestError("title is required")
	}
	if !req.AssignedTo.IsValid() {
		return nil, utils.CreateBadRequestError("assignee must be Amit or Prateek")
	}
	if req.DueDate != "" && !utils.IsValidDate(req.DueDate) {
		return nil, utils.CreateBadRequestError("due date must be a valid YYYY-MM-DD value")
	}

	return s.tasks.Insert(ctx, &models.Task{
		Title:       req.Title,
		Description: req.Description,
		EnquiryID:   req.EnquiryID,
		Status:      models.TaskStatusPending,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	})
}

// Update applies a partial patch. Moving to Completed stamps completedAt,
// reopening to Pending clears it.
func (s *TaskService) Update(ctx context.Context, id string, req models.TaskUpdateRequest) (*models.Task, error) {
	if id == "" {
		return nil, utils.CreateBadRequestError("task id is required")
	}
	if req.AssignedTo != nil && !req.AssignedTo.IsValid() {
		return nil, utils.CreateBadRequestError("assignee must be Amit or Prateek")
	}
	if req.DueDate != nil && *req.DueDate != "" && !utils.IsValidDate(*req.DueDate) {
		return nil, utils.CreateBadRequestError("due date must be a valid YYYY-MM-DD value")
	}

	fields := map[string]interface{}{}
	setIf(fields, "title", req.Title)
	setIf(fields, "description", req.Description)
	setIf(fields, "enquiryId", req.EnquiryID)
	setIf(fields, "assignedTo", (*string)(req.AssignedTo))
	setIf(fields, "dueDate", req.DueDate)

	if req.Status != nil {
		switch *req.Status {
		case models.TaskStatusCompleted:
			fields["status"] = string(models.TaskStatusCompleted)
			fields["completedAt"] = time.Now()
		case models.TaskStatusPending:
			fields["status"] = string(models.TaskStatusPending)
			fields["completedAt"] = nil
		default:
			return nil, utils.CreateBadRequestError("invalid task status")
		}
	}

	// an empty $set is a driver error, reject the patch up front
	if len(fields) == 0 {
		return nil, utils.CreateBadRequestError("empty patch")
	}

	updated, err := s.tasks.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.CreateNotFoundError("task")
	}
	return updated, nil
}

// Delete removes a task. The referenced enquiry, if any, is untouched.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return utils.CreateBadRequestError("task id is required")
	}
	return s.tasks.Delete(ctx, id)
}

// List fetches tasks, optionally filtered by assignee.
func (s *TaskService) List(ctx context.Context, assignedTo models.Assignee) ([]models.Task, error) {
	return s.tasks.List(ctx, assignedTo)
}
