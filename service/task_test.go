package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/utils"
)

// MockTaskStore
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) FindByID(ctx context.Context, id string) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskStore) Insert(ctx context.Context, task *models.Task) (*models.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		if args.Error(1) != nil {
			return nil, args.Error(1)
		}
		return task, nil
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Task, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskStore) List(ctx context.Context, assignedTo models.Assignee) ([]models.Task, error) {
	args := m.Called(ctx, assignedTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func TestCreateTaskStartsPending(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	tasks.On("Insert", mock.Anything, mock.MatchedBy(func(task *models.Task) bool {
		return task.Status == models.TaskStatusPending && task.CompletedAt == nil
	})).Return(nil, nil)

	created, err := svc.Create(context.Background(), models.TaskCreateRequest{
		Title:      "Follow up on quote",
		AssignedTo: models.AssigneePrateek,
		DueDate:    "2025-06-20",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, created.Status)
}

func TestCreateTaskRejectsBadInput(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	cases := []models.TaskCreateRequest{
		{Title: "", AssignedTo: models.AssigneeAmit},
		{Title: "call back", AssignedTo: "Rahul"},
		{Title: "call back", AssignedTo: models.AssigneeAmit, DueDate: "20-06-2025"},
	}

	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		var apiErr *utils.ApiError
		if assert.ErrorAs(t, err, &apiErr) {
			assert.Equal(t, "BAD_REQUEST", apiErr.ErrorCode)
		}
	}
	tasks.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCompleteTaskStampsCompletedAt(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	id := primitive.NewObjectID()
	tasks.On("Update", mock.Anything, id.Hex(), mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["status"] == string(models.TaskStatusCompleted) && fields["completedAt"] != nil
	})).Return(&models.Task{ID: id, Status: models.TaskStatusCompleted}, nil)

	status := models.TaskStatusCompleted
	_, err := svc.Update(context.Background(), id.Hex(), models.TaskUpdateRequest{Status: &status})

	assert.NoError(t, err)
}

func TestReopenTaskClearsCompletedAt(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	id := primitive.NewObjectID()
	tasks.On("Update", mock.Anything, id.Hex(), mock.MatchedBy(func(fields map[string]interface{}) bool {
		value, present := fields["completedAt"]
		return fields["status"] == string(models.TaskStatusPending) && present && value == nil
	})).Return(&models.Task{ID: id, Status: models.TaskStatusPending}, nil)

	status := models.TaskStatusPending
	_, err := svc.Update(context.Background(), id.Hex(), models.TaskUpdateRequest{Status: &status})

	assert.NoError(t, err)
}

func TestUpdateTaskInvalidStatus(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	status := models.TaskStatus("Cancelled")
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), models.TaskUpdateRequest{Status: &status})

	assert.Error(t, err)
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTaskEmptyPatchRejected(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), models.TaskUpdateRequest{})

	var apiErr *utils.ApiError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, "BAD_REQUEST", apiErr.ErrorCode)
	}
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTaskNotFound(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	id := primitive.NewObjectID()
	tasks.On("Update", mock.Anything, id.Hex(), mock.Anything).Return(nil, nil)

	title := "renamed"
	_, err := svc.Update(context.Background(), id.Hex(), models.TaskUpdateRequest{Title: &title})

	var apiErr *utils.ApiError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, "RESOURCE_NOT_FOUND", apiErr.ErrorCode)
	}
}

func TestDeleteTaskDelegates(t *testing.T) {
	tasks := new(MockTaskStore)
	svc := NewTaskService(tasks)

	id := primitive.NewObjectID()
	tasks.On("Delete", mock.Anything, id.Hex()).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id.Hex()))
	tasks.AssertNumberOfCalls(t, "Delete", 1)
}
