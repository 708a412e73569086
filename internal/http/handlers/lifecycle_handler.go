package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "lifelink/internal/log"
	"lifelink/internal/services"
)

type LifecycleHandler struct {
	Responses   *services.ResponseService
	Fulfillment *services.FulfillmentService
}

type respondInput struct {
	RequestID int64 `json:"requestId"`
	DonorID   int64 `json:"donorId"`
}

// POST /api/respond
func (h *LifecycleHandler) Respond(c *fiber.Ctx) error {
	var in respondInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	if in.RequestID < 1 {
		return message(c, fiber.StatusBadRequest, "requestId is required")
	}
	hist, err := h.Responses.Respond(caller(c), in.RequestID, in.DonorID)
	if err != nil {
		return fail(c, "donation.respond", err, "Request not found")
	}
	applog.Audit(c, "donation.respond", map[string]any{
		"history_id": hist.ID, "request_id": hist.RequestID, "donor_id": hist.DonorID,
	})
	return c.JSON(fiber.Map{"message": "Response recorded", "history": hist})
}

type fulfillInput struct {
	HistoryID int64 `json:"historyId"`
}

// POST /api/fulfill
func (h *LifecycleHandler) Fulfill(c *fiber.Ctx) error {
	var in fulfillInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	if in.HistoryID < 1 {
		return message(c, fiber.StatusBadRequest, "historyId is required")
	}
	res, err := h.Fulfillment.Fulfill(caller(c), in.HistoryID)
	if err != nil {
		return fail(c, "donation.fulfill", err, "Donation record not found")
	}
	applog.Audit(c, "donation.fulfill", map[string]any{
		"history_id": res.History.ID, "donor_id": res.History.DonorID,
		"blood_type": res.Inventory.Type, "units": res.Inventory.Units,
	})
	return c.JSON(fiber.Map{"message": "Donation fulfilled", "history": res.History, "inventory": res.Inventory})
}
