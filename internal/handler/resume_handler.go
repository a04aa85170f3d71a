package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/middleware"
	"easyway/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ResumeHandler handles resume HTTP requests. Every route is owner-scoped.
type ResumeHandler struct {
	resumeService service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler instance.
func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// GetResume godoc
// @Summary Get the caller's resume
// @Description Users without a saved resume get the empty document shape.
// @Tags resume
// @Produce json
// @Success 200 {object} dto.ResumeResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /resumes [get]
func (h *ResumeHandler) GetResume(c *fiber.Ctx) error {
	resume, err := h.resumeService.GetResume(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resume)
}

// SaveResume godoc
// @Summary Create or replace the caller's resume
// @Tags resume
// @Accept json
// @Produce json
// @Param request body dto.ResumeRequest true "Resume document"
// @Success 200 {object} dto.ResumeResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /resumes [put]
func (h *ResumeHandler) SaveResume(c *fiber.Ctx) error {
	var req dto.ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resume, err := h.resumeService.SaveResume(c.Context(), middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resume)
}

// ResetResume godoc
// @Summary Reset the caller's resume to the empty shape
// @Tags resume
// @Produce json
// @Success 200 {object} dto.ResumeResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /resumes/reset [post]
func (h *ResumeHandler) ResetResume(c *fiber.Ctx) error {
	resume, err := h.resumeService.ResetResume(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resume)
}
