package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lifelink/internal/repos"
	"lifelink/internal/services"
	"lifelink/internal/validate"
)

type DirectoryHandler struct {
	Dir      *services.DirectoryService
	StatsSvc *services.StatsService
}

// GET /api/donors?bloodType=&city=
func (h *DirectoryHandler) Donors(c *fiber.Ctx) error {
	f := repos.DonorFilter{City: validate.Text(c.Query("city"), 80)}
	if q := c.Query("bloodType"); q != "" {
		bt, ok := validate.BloodType(q)
		if !ok {
			return message(c, fiber.StatusBadRequest, "unknown blood type")
		}
		f.BloodType = bt
	}
	donors, err := h.Dir.Donors(f)
	if err != nil {
		return fail(c, "donors.list", err, "Donor not found")
	}
	return c.JSON(donors)
}

// GET /api/history/:donorId
func (h *DirectoryHandler) History(c *fiber.Ctx) error {
	donorID, ok := validate.ID(c.Params("donorId"))
	if !ok {
		return message(c, fiber.StatusBadRequest, "invalid donor id")
	}
	rows, err := h.Dir.History(donorID)
	if err != nil {
		return fail(c, "history.list", err, "Donor not found")
	}
	return c.JSON(rows)
}

// GET /api/activity?limit=
func (h *DirectoryHandler) Activity(c *fiber.Ctx) error {
	limit := validate.Limit(c.Query("limit"), 50, 200)
	entries, err := h.Dir.Activity(limit)
	if err != nil {
		return fail(c, "activity.list", err, "Not found")
	}
	return c.JSON(entries)
}

// GET /api/stats?donorId=
// Without donorId the donor section is scoped to the logged-in donor, if any.
func (h *DirectoryHandler) Stats(c *fiber.Ctx) error {
	var donorID int64
	if q := c.Query("donorId"); q != "" {
		id, ok := validate.ID(q)
		if !ok {
			return message(c, fiber.StatusBadRequest, "invalid donor id")
		}
		donorID = id
	} else if u := caller(c); u.IsDonor() {
		donorID = *u.DonorID
	}
	st, err := h.StatsSvc.Compute(donorID)
	if err != nil {
		return fail(c, "stats", err, "Donor not found")
	}
	return c.JSON(st)
}
