package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/middleware"
	"easyway/internal/service"
	"easyway/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests.
type QuizHandler struct {
	quizService service.QuizService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance.
func NewQuizHandler(quizService service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{quizService: quizService, validator: validator}
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz content"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateCreateQuizRequest(&req); errs != nil {
		return errs
	}

	quiz, err := h.quizService.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Tags quiz
// @Produce json
// @Success 200 {array} dto.QuizSummary
// @Router /quiz [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.quizService.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz by ID or slug
// @Description Correct answers and hints are stripped from the response.
// @Tags quiz
// @Produce json
// @Param idOrSlug path string true "Quiz ID or slug"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/quizSet/{idOrSlug} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.quizService.ResolveQuiz(c.Context(), c.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Answers"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSubmitQuizRequest(&req); errs != nil {
		return errs
	}

	result, err := h.quizService.SubmitQuiz(c.Context(), middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetUserScore godoc
// @Summary Get the caller's latest score for a quiz
// @Tags quiz
// @Produce json
// @Param quiz query string true "Quiz ID or slug"
// @Success 200 {object} dto.UserScoreResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/user-score [get]
func (h *QuizHandler) GetUserScore(c *fiber.Ctx) error {
	score, err := h.quizService.GetUserScore(c.Context(), middleware.UserID(c), c.Query("quiz"))
	if err != nil {
		return err
	}
	return c.JSON(score)
}

// GetCertificate godoc
// @Summary Verify a certificate by its credential
// @Description Public endpoint used by employers to verify certificates.
// @Tags quiz
// @Produce json
// @Param credential path string true "Certificate credential"
// @Success 200 {object} dto.CertificateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/certificate/{credential} [get]
func (h *QuizHandler) GetCertificate(c *fiber.Ctx) error {
	cert, err := h.quizService.GetCertificate(c.Context(), c.Params("credential"))
	if err != nil {
		return err
	}
	return c.JSON(cert)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	if errs := h.validator.ValidateULID("id", c.Params("id")); errs != nil {
		return errs
	}
	if err := h.quizService.DeleteQuiz(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "quiz deleted"})
}
