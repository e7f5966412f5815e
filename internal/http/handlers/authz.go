package handlers

import (
	applog "luxelane/internal/log"

	"github.com/gofiber/fiber/v2"
)

// HeaderAdminAuth carries the shared admin secret on mutating and
// admin-only requests.
const HeaderAdminAuth = "x-admin-auth"

// RequireAdmin compares the x-admin-auth header verbatim to the
// configured secret. No sessions, no expiry. An empty secret never
// authorizes anything.
func RequireAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(HeaderAdminAuth)
		if secret == "" || provided == "" || provided != secret {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
		return c.Next()
	}
}
