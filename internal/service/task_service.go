package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/repository"
	"easyway/internal/util"
)

// TaskService manages user-owned to-do items. Every mutation checks
// ownership so one user can never touch another's tasks.
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req *dto.TaskRequest) (*dto.TaskResponse, error)
	ListTasks(ctx context.Context, userID string) ([]dto.TaskResponse, error)
	UpdateTask(ctx context.Context, userID, taskID string, req *dto.TaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

type taskServiceImpl struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new instance of the task service.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskServiceImpl{taskRepo: taskRepo}
}

func toTaskResponse(task *domain.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
	if !task.DueAt.IsZero() {
		due := task.DueAt
		resp.DueAt = &due
	}
	return resp
}

// CreateTask stores a new task for the caller.
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID string, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	task := &domain.Task{
		ID:     util.NewULID(),
		UserID: userID,
		Text:   req.Text,
	}
	if req.DueAt != nil {
		task.DueAt = *req.DueAt
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, domain.NewInternalError("failed to create task", err)
	}
	task.CreatedAt = time.Now()
	return toTaskResponse(task), nil
}

// ListTasks returns the caller's tasks.
func (s *taskServiceImpl) ListTasks(ctx context.Context, userID string) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list tasks", err)
	}
	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, *toTaskResponse(task))
	}
	return responses, nil
}

// ownedTask loads a task and enforces caller ownership. The response does
// not distinguish missing from foreign tasks.
func (s *taskServiceImpl) ownedTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get task", err)
	}
	if task == nil || !task.OwnedBy(userID) {
		return nil, domain.NewNotFoundError("task not found")
	}
	return task, nil
}

// UpdateTask changes the text, completion or due date of a caller-owned
// task. Omitted fields keep their current values.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, userID, taskID string, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Text != "" {
		task.Text = req.Text
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.DueAt != nil {
		task.DueAt = *req.DueAt
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("task not found")
		}
		return nil, domain.NewInternalError("failed to update task", err)
	}
	return toTaskResponse(task), nil
}

// DeleteTask removes a caller-owned task.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}
	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("task not found")
		}
		return domain.NewInternalError("failed to delete task", err)
	}
	return nil
}
