package auth

import (
	"strings"

	"taxi-translator-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "admin_claims"

// RequireAdmin guards admin routes with a Bearer JWT issued by /admin/login.
func RequireAdmin(tokens *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing authorization header")
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid authorization header")
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext returns the admin claims stored by RequireAdmin, if any.
func ClaimsFromContext(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(claimsKey).(*Claims)
	return claims
}
