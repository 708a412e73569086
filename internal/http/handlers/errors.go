package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lifelink/internal/domain"
	applog "lifelink/internal/log"
)

const genericError = "Something went wrong. Please try again."

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// fail maps domain errors onto HTTP statuses. notFound is the message used for
// a 404; everything unexpected becomes a generic 500.
func fail(c *fiber.Ctx, action string, err error, notFound string) error {
	fields := map[string]any{"error": err.Error()}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.Status(fiber.StatusNotFound)
		applog.Info(c, action+".not_found", fields)
		return message(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrAlreadyFulfilled):
		c.Status(fiber.StatusBadRequest)
		applog.Info(c, action+".already_fulfilled", fields)
		return message(c, fiber.StatusBadRequest, "Donation already fulfilled")
	case errors.Is(err, domain.ErrValidation):
		c.Status(fiber.StatusBadRequest)
		applog.Security(c, "validation.fail", fields)
		return message(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		c.Status(fiber.StatusUnauthorized)
		applog.Security(c, "access.denied", fields)
		return message(c, fiber.StatusUnauthorized, "Please log in first")
	case errors.Is(err, domain.ErrForbidden):
		c.Status(fiber.StatusForbidden)
		applog.Security(c, "access.denied", fields)
		return message(c, fiber.StatusForbidden, "You are not allowed to do that")
	case errors.Is(err, domain.ErrConflict):
		c.Status(fiber.StatusConflict)
		applog.Info(c, action+".conflict", fields)
		return message(c, fiber.StatusConflict, "Email already registered")
	}
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, action+".fail", err, nil)
	return message(c, fiber.StatusInternalServerError, genericError)
}

// badBody rejects an unparsable JSON body.
func badBody(c *fiber.Ctx, err error) error {
	c.Status(fiber.StatusBadRequest)
	applog.Security(c, "validation.fail", map[string]any{"field": "body", "error": err.Error()})
	return message(c, fiber.StatusBadRequest, "invalid JSON body")
}

// ErrorHandler is the app-wide fallback: fiber errors keep their status,
// anything else is logged and hidden behind a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return message(c, fe.Code, fe.Message)
	}
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, "server.error", err, nil)
	return message(c, fiber.StatusInternalServerError, genericError)
}

func caller(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
