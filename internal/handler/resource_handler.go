package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ResourceHandler handles study-material upload and listing requests.
type ResourceHandler struct {
	resourceService service.ResourceService
}

// NewResourceHandler creates a new ResourceHandler instance.
func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// UploadResource godoc
// @Summary Upload a study resource
// @Description Multipart upload: metadata fields plus a "file" part.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resource file (max 50MB)"
// @Param title formData string true "Title"
// @Param subject formData string true "Subject"
// @Param type formData string true "Type: note, pyq, roadmap or video"
// @Success 201 {object} dto.ResourceResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /resources/upload [post]
func (h *ResourceHandler) UploadResource(c *fiber.Ctx) error {
	var req dto.UploadResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid form fields")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("file is required")
	}

	resource, err := h.resourceService.UploadResource(c.Context(), &req, file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resource)
}

// ListResources godoc
// @Summary List resources, optionally filtered
// @Tags resources
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param type query string false "Filter by type"
// @Success 200 {array} dto.ResourceResponse
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *fiber.Ctx) error {
	var filters dto.ResourceFilters
	if err := c.QueryParser(&filters); err != nil {
		return domain.NewInvalidInputError("invalid query parameters")
	}

	resources, err := h.resourceService.ListResources(c.Context(), &filters)
	if err != nil {
		return err
	}
	return c.JSON(resources)
}

// GetResource godoc
// @Summary Get one resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.ResourceResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *fiber.Ctx) error {
	resource, err := h.resourceService.GetResource(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resource)
}

// DeleteResource godoc
// @Summary Delete a resource and its stored object
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *fiber.Ctx) error {
	if err := h.resourceService.DeleteResource(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "resource deleted"})
}
