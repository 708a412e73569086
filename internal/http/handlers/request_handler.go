package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "lifelink/internal/log"
	"lifelink/internal/repos"
	"lifelink/internal/services"
	"lifelink/internal/validate"
)

type RequestHandler struct {
	Requests *services.RequestService
}

// GET /api/requests?bloodType=&urgency=&open=true
func (h *RequestHandler) List(c *fiber.Ctx) error {
	var f repos.RequestFilter
	if q := c.Query("bloodType"); q != "" {
		bt, ok := validate.BloodType(q)
		if !ok {
			return message(c, fiber.StatusBadRequest, "unknown blood type")
		}
		f.BloodType = bt
	}
	if q := c.Query("urgency"); q != "" {
		u, ok := validate.Urgency(q)
		if !ok {
			return message(c, fiber.StatusBadRequest, "unknown urgency")
		}
		f.Urgency = u
	}
	f.OpenOnly = strings.EqualFold(c.Query("open"), "true")

	list, err := h.Requests.List(f)
	if err != nil {
		return fail(c, "requests.list", err, "Request not found")
	}
	return c.JSON(list)
}

// POST /api/requests
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in services.CreateRequestInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	r, err := h.Requests.Create(caller(c), in)
	if err != nil {
		return fail(c, "requests.create", err, "Request not found")
	}
	applog.Audit(c, "requests.create", map[string]any{
		"request_id": r.ID, "hospital": r.Hospital, "blood_type": r.BloodType,
		"units": r.Units, "urgency": r.Urgency,
	})
	return c.Status(fiber.StatusCreated).JSON(r)
}
