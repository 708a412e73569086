package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "lifelink/internal/log"
	"lifelink/internal/services"
)

const sessionCookie = "sid"

// AttachUser puts the session's user, if any, into c.Locals("user").
func AttachUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies(sessionCookie); sid != "" {
			if u, err := auth.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	}
}

// RequireUser rejects requests without a logged-in user.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if caller(c) != nil {
			return c.Next()
		}
		sid := c.Cookies(sessionCookie)
		if sid != "" {
			if u, err := auth.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
				return c.Next()
			}
		}
		applog.Security(c, "access.denied.anonymous", nil)
		return message(c, fiber.StatusUnauthorized, "Please log in first")
	}
}
