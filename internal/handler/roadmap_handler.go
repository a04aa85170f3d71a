package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/middleware"
	"easyway/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RoadmapHandler handles curriculum and progress HTTP requests.
type RoadmapHandler struct {
	roadmapService service.RoadmapService
}

// NewRoadmapHandler creates a new RoadmapHandler instance.
func NewRoadmapHandler(roadmapService service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

// CreateRoadmap godoc
// @Summary Create a roadmap
// @Tags roadmaps
// @Accept json
// @Produce json
// @Param request body dto.CreateRoadmapRequest true "Roadmap content"
// @Success 201 {object} dto.RoadmapResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /roadmaps [post]
func (h *RoadmapHandler) CreateRoadmap(c *fiber.Ctx) error {
	var req dto.CreateRoadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	roadmap, err := h.roadmapService.CreateRoadmap(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(roadmap)
}

// ListRoadmaps godoc
// @Summary List all roadmaps
// @Tags roadmaps
// @Produce json
// @Success 200 {array} dto.RoadmapSummary
// @Router /roadmaps [get]
func (h *RoadmapHandler) ListRoadmaps(c *fiber.Ctx) error {
	roadmaps, err := h.roadmapService.ListRoadmaps(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(roadmaps)
}

// GetRoadmap godoc
// @Summary Get a roadmap with the caller's progress
// @Tags roadmaps
// @Produce json
// @Param id path string true "Roadmap ID"
// @Success 200 {object} dto.RoadmapResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /roadmaps/{id} [get]
func (h *RoadmapHandler) GetRoadmap(c *fiber.Ctx) error {
	roadmap, err := h.roadmapService.GetRoadmap(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(roadmap)
}

// ToggleStep godoc
// @Summary Toggle one roadmap step's completion for the caller
// @Tags roadmaps
// @Accept json
// @Produce json
// @Param id path string true "Roadmap ID"
// @Param request body dto.ToggleStepRequest true "Step coordinates"
// @Success 200 {object} dto.ToggleStepResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /roadmaps/{id}/toggle [post]
func (h *RoadmapHandler) ToggleStep(c *fiber.Ctx) error {
	var req dto.ToggleStepRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	progress, err := h.roadmapService.ToggleStep(c.Context(), middleware.UserID(c), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(progress)
}
