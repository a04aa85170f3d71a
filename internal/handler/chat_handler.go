package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/middleware"
	"easyway/internal/service"
	"easyway/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles assistant chat and code analysis requests.
type ChatHandler struct {
	chatService service.ChatService
	validator   *validation.Validator
}

// NewChatHandler creates a new ChatHandler instance.
func NewChatHandler(chatService service.ChatService, validator *validation.Validator) *ChatHandler {
	return &ChatHandler{chatService: chatService, validator: validator}
}

// SendMessage godoc
// @Summary Send a message to the study assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateChatMessage(req.Message); errs != nil {
		return errs
	}

	resp, err := h.chatService.SendMessage(c.Context(), middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetHistory godoc
// @Summary Get the caller's chat history
// @Tags chat
// @Produce json
// @Success 200 {object} dto.ChatHistoryResponse
// @Router /chat/history [get]
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	history, err := h.chatService.GetHistory(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(history)
}

// ClearHistory godoc
// @Summary Clear the caller's chat history
// @Tags chat
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /chat/history [delete]
func (h *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.chatService.ClearHistory(c.Context(), middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "chat history cleared"})
}

// AnalyzeCode godoc
// @Summary Get structured feedback on a code snippet
// @Description Stateless; the exchange never enters chat history.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeCodeRequest true "Code and language"
// @Success 200 {object} dto.AnalyzeCodeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /code/analyze-code [post]
func (h *ChatHandler) AnalyzeCode(c *fiber.Ctx) error {
	var req dto.AnalyzeCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateAnalyzeCodeRequest(&req); errs != nil {
		return errs
	}

	resp, err := h.chatService.AnalyzeCode(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
