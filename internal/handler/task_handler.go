package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/middleware"
	"easyway/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles to-do HTTP requests. All routes act on the caller's
// own tasks only.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.TaskRequest true "Task content"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	task, err := h.taskService.CreateTask(c.Context(), middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// ListTasks godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} dto.TaskResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.ListTasks(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Foreign tasks respond 404, indistinguishable from missing.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.TaskRequest true "Fields to change"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	task, err := h.taskService.UpdateTask(c.Context(), middleware.UserID(c), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.taskService.DeleteTask(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "task deleted"})
}
