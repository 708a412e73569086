package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lifelink/internal/log"
	"lifelink/internal/services"
	"lifelink/internal/validate"
)

type AuthHandler struct {
	Auth         *services.AuthService
	CookieSecure bool
}

func (h *AuthHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies(sessionCookie)
	if sid == "" {
		sid = uuid.NewString()
	}
	h.setCookie(c, sid, time.Time{})
	return sid
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.CookieSecure,
		Expires:  expires,
	})
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	sid := h.ensureSID(c)
	u, err := h.Auth.Signup(sid, in)
	if err != nil {
		return fail(c, "auth.signup", err, "Not found")
	}
	c.Locals("user", u)
	log.Audit(c, "auth.signup", map[string]any{"email": u.Email, "role": u.Role})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Account created", "user": u})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	if _, ok := validate.Email(in.Email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": in.Email, "reason": "bad_format"})
		return message(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !validate.Password(in.Password) {
		log.Security(c, "auth.login.fail", map[string]any{"email": in.Email, "reason": "bad_password_format"})
		return message(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	sid := h.ensureSID(c)
	u, err := h.Auth.Login(sid, in.Email, in.Password)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": in.Email})
		return message(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	c.Locals("user", u)
	log.Audit(c, "auth.login.success", map[string]any{"email": in.Email})
	return c.JSON(fiber.Map{"message": "Logged in", "user": u})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies(sessionCookie)
	if sid != "" {
		_ = h.Auth.Logout(sid)
	}
	h.setCookie(c, "", time.Now().Add(-1*time.Hour))
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := caller(c)
	if u == nil {
		return message(c, fiber.StatusUnauthorized, "Please log in first")
	}
	return c.JSON(fiber.Map{"user": u})
}
