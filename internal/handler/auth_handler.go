package handler

import (
	"time"

	"easyway/internal/config"
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/middleware"
	"easyway/internal/service"
	"easyway/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration, login and profile HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
	appConfig   *config.Config
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, validator *validation.Validator, appConfig *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		appConfig:   appConfig,
	}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.appConfig.JWT.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.appConfig.JWT.TokenTTL),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Strict",
		Path:     "/",
	})
}

// Register godoc
// @Summary Register a new student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateRegisterRequest(&req); errs != nil {
		return errs
	}

	user, token, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateLoginRequest(&req); errs != nil {
		return errs
	}

	user, token, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(user)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.appConfig.JWT.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Strict",
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "logged out"})
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetProfile(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	user, err := h.authService.UpdateProfile(c.Context(), middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Description Always responds 200; the response never reveals whether the
// email has an account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if _, err := h.authService.ForgotPassword(c.Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "if the account exists, a reset token has been issued"})
}

// ResetPassword godoc
// @Summary Reset a password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateResetPasswordRequest(&req); errs != nil {
		return errs
	}

	if err := h.authService.ResetPassword(c.Context(), &req); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "password updated"})
}
