package middleware

import (
	"strings"

	"hotelmenu/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the Locals key under which the authenticated user is stored.
const PrincipalKey = "principal"

// AuthRequired is a Fiber middleware that checks for a valid bearer token and
// resolves it to its principal. The principal must still exist; a token whose
// user has been removed is rejected.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		tokenString := parts[1]

		user, err := authService.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Store the principal and raw token for subsequent handlers.
		c.Locals(PrincipalKey, user)
		c.Locals("token", tokenString)

		return c.Next()
	}
}
