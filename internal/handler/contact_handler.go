package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/service"
	"easyway/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService service.ContactService
	validator      *validation.Validator
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(contactService service.ContactService, validator *validation.Validator) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator}
}

// SubmitMessage godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Message"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /contact [post]
func (h *ContactHandler) SubmitMessage(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateContactRequest(&req); errs != nil {
		return errs
	}

	if err := h.contactService.SubmitMessage(c.Context(), &req); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "message received"})
}
