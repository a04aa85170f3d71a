package handler

import (
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/service"
	"easyway/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles user administration and portal statistics. Routes
// are mounted behind the admin-only middleware.
type AdminHandler struct {
	adminService   service.AdminService
	contactService service.ContactService
	validator      *validation.Validator
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(adminService service.AdminService, contactService service.ContactService, validator *validation.Validator) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		contactService: contactService,
		validator:      validator,
	}
}

// ListUsers godoc
// @Summary List all accounts
// @Tags admin
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// UpdateUserRole godoc
// @Summary Change an account's role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *fiber.Ctx) error {
	if errs := h.validator.ValidateULID("id", c.Params("id")); errs != nil {
		return errs
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	user, err := h.adminService.UpdateUserRole(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// GetStats godoc
// @Summary Get portal-wide counts
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminStatsResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// ListContactMessages godoc
// @Summary List contact-form submissions
// @Tags admin
// @Produce json
// @Success 200 {array} dto.ContactMessageView
// @Failure 403 {object} middleware.ErrorResponse
// @Router /contact [get]
func (h *AdminHandler) ListContactMessages(c *fiber.Ctx) error {
	messages, err := h.contactService.ListMessages(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(messages)
}
