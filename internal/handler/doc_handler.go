package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DocHandler handles knowledge-article HTTP requests.
type DocHandler struct {
	docService service.DocService
}

// NewDocHandler creates a new DocHandler instance.
func NewDocHandler(docService service.DocService) *DocHandler {
	return &DocHandler{docService: docService}
}

// CreateDoc godoc
// @Summary Create a doc article
// @Tags docs
// @Accept json
// @Produce json
// @Param request body dto.CreateDocRequest true "Article header"
// @Success 201 {object} dto.DocResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /docs [post]
func (h *DocHandler) CreateDoc(c *fiber.Ctx) error {
	var req dto.CreateDocRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	doc, err := h.docService.CreateDoc(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ListDocs godoc
// @Summary List all doc articles
// @Tags docs
// @Produce json
// @Success 200 {array} dto.DocSummary
// @Router /docs [get]
func (h *DocHandler) ListDocs(c *fiber.Ctx) error {
	docs, err := h.docService.ListDocs(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// GetDoc godoc
// @Summary Get a doc article with its questions
// @Tags docs
// @Produce json
// @Param id path string true "Doc ID"
// @Success 200 {object} dto.DocResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /docs/{id} [get]
func (h *DocHandler) GetDoc(c *fiber.Ctx) error {
	doc, err := h.docService.GetDoc(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// UpdateDoc godoc
// @Summary Update a doc article's header
// @Tags docs
// @Accept json
// @Produce json
// @Param id path string true "Doc ID"
// @Param request body dto.UpdateDocRequest true "New header"
// @Success 200 {object} dto.DocResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /docs/{id} [put]
func (h *DocHandler) UpdateDoc(c *fiber.Ctx) error {
	var req dto.UpdateDocRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	doc, err := h.docService.UpdateDoc(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// DeleteDoc godoc
// @Summary Delete a doc article
// @Tags docs
// @Produce json
// @Param id path string true "Doc ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /docs/{id} [delete]
func (h *DocHandler) DeleteDoc(c *fiber.Ctx) error {
	if err := h.docService.DeleteDoc(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "doc deleted"})
}

// AddQuestion godoc
// @Summary Append a question to a doc article
// @Tags docs
// @Accept json
// @Produce json
// @Param id path string true "Doc ID"
// @Param request body dto.DocQuestionRequest true "Question content"
// @Success 201 {object} dto.DocQuestionView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /docs/{id}/questions [post]
func (h *DocHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.DocQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	question, err := h.docService.AddQuestion(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// UpdateQuestion godoc
// @Summary Update a nested question
// @Tags docs
// @Accept json
// @Produce json
// @Param id path string true "Doc ID"
// @Param questionID path string true "Question ID"
// @Param request body dto.DocQuestionRequest true "New content"
// @Success 200 {object} dto.DocQuestionView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /docs/{id}/questions/{questionID} [put]
func (h *DocHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.DocQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	question, err := h.docService.UpdateQuestion(c.Context(), c.Params("id"), c.Params("questionID"), &req)
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// DeleteQuestion godoc
// @Summary Delete a nested question
// @Tags docs
// @Produce json
// @Param id path string true "Doc ID"
// @Param questionID path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /docs/{id}/questions/{questionID} [delete]
func (h *DocHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.docService.DeleteQuestion(c.Context(), c.Params("id"), c.Params("questionID")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "question deleted"})
}
