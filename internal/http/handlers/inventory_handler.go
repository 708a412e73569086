package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "lifelink/internal/log"
	"lifelink/internal/services"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.Inv.List()
	if err != nil {
		return fail(c, "inventory.list", err, "Blood type not found")
	}
	return c.JSON(items)
}

type inventoryInput struct {
	Type  string `json:"type"`
	Units *int   `json:"units"`
}

// POST /api/inventory/update
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in inventoryInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	if in.Type == "" || in.Units == nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "type/units"})
		return message(c, fiber.StatusBadRequest, "type and units are required")
	}
	item, err := h.Inv.Update(caller(c), in.Type, *in.Units)
	if err != nil {
		return fail(c, "inventory.save", err, "Blood type not found")
	}
	applog.Audit(c, "inventory.save", map[string]any{"type": item.Type, "units": item.Units, "status": item.Status})
	return c.JSON(fiber.Map{"message": "Inventory updated", "item": item})
}
