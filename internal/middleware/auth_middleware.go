package middleware

import (
	"strings"

	"easyway/internal/domain"
	"easyway/internal/logger"
	"easyway/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID"   // Key for storing UserID in fiber.Ctx locals
	UserRoleKey         = "userRole" // Key for storing the role in fiber.Ctx locals
)

// tokenFromRequest pulls the session token from the auth cookie, falling
// back to an Authorization bearer header for non-browser clients.
func tokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}
	authHeader := c.Get(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerSchema) {
		return strings.TrimPrefix(authHeader, BearerSchema)
	}
	return ""
}

// Protected requires a valid session JWT. On success the user's ID and role
// are stored in the request locals.
func Protected(authService service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c, cookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_TOKEN",
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("JWT validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Invalid or expired session",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(UserRoleKey, claims.Role)

		return c.Next()
	}
}

// AdminOnly allows the request through only when the authenticated user
// holds the admin role. It must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(UserRoleKey).(string)
		if role != string(domain.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    string(domain.CodeForbidden),
				Message: "Admin access required",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's ID from the request locals.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
