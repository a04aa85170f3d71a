package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"easyway/internal/domain"
	"easyway/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTask_Success(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	userID := "01HUSER000000000000000001"
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	taskRepo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.UserID == userID && task.Text == "Revise pointers" && task.DueAt.Equal(due)
	})).Return(nil)

	svc := NewTaskService(taskRepo)
	resp, err := svc.CreateTask(context.Background(), userID, &dto.TaskRequest{Text: "Revise pointers", DueAt: &due})

	assert.NoError(t, err)
	assert.Equal(t, "Revise pointers", resp.Text)
	assert.False(t, resp.Completed)
	assert.NotNil(t, resp.DueAt)
	taskRepo.AssertExpectations(t)
}

func TestCreateTask_EmptyText(t *testing.T) {
	svc := NewTaskService(new(MockTaskRepository))
	_, err := svc.CreateTask(context.Background(), "01HUSER000000000000000001", &dto.TaskRequest{Text: "   "})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeInvalidInput, dErr.Code)
}

func TestUpdateTask_ForeignTaskLooksMissing(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	foreign := &domain.Task{
		ID:     "01HTASK000000000000000001",
		UserID: "01HOWNER00000000000000001",
		Text:   "Someone else's task",
	}

	taskRepo.On("GetTaskByID", mock.Anything, foreign.ID).Return(foreign, nil)

	svc := NewTaskService(taskRepo)
	_, err := svc.UpdateTask(context.Background(), "01HUSER000000000000000001", foreign.ID, &dto.TaskRequest{Text: "hijack"})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeNotFound, dErr.Code)
	taskRepo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
}

func TestUpdateTask_PartialFields(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	userID := "01HUSER000000000000000001"
	existing := &domain.Task{
		ID:     "01HTASK000000000000000001",
		UserID: userID,
		Text:   "Revise pointers",
	}
	completed := true

	taskRepo.On("GetTaskByID", mock.Anything, existing.ID).Return(existing, nil)
	taskRepo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Text == "Revise pointers" && task.Completed
	})).Return(nil)

	svc := NewTaskService(taskRepo)
	resp, err := svc.UpdateTask(context.Background(), userID, existing.ID, &dto.TaskRequest{Completed: &completed})

	assert.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, "Revise pointers", resp.Text)
	taskRepo.AssertExpectations(t)
}

func TestDeleteTask_OwnershipEnforced(t *testing.T) {
	taskRepo := new(MockTaskRepository)
	foreign := &domain.Task{
		ID:     "01HTASK000000000000000001",
		UserID: "01HOWNER00000000000000001",
		Text:   "Someone else's task",
	}

	taskRepo.On("GetTaskByID", mock.Anything, foreign.ID).Return(foreign, nil)

	svc := NewTaskService(taskRepo)
	err := svc.DeleteTask(context.Background(), "01HUSER000000000000000001", foreign.ID)

	assert.Error(t, err)
	taskRepo.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything)
}

func TestListTasks_Empty(t *testing.T) {
	taskRepo := new(MockTaskRepository)

	taskRepo.On("ListTasksByUser", mock.Anything, "01HUSER000000000000000001").Return([]*domain.Task{}, nil)

	svc := NewTaskService(taskRepo)
	tasks, err := svc.ListTasks(context.Background(), "01HUSER000000000000000001")

	assert.NoError(t, err)
	assert.Empty(t, tasks)
}
