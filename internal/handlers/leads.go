package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patrisenra/pasenca/internal/storage"
)

// LeadHandler exposes the collected leads to follow-up tooling.
type LeadHandler struct {
	leads storage.LeadStore
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leads storage.LeadStore) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// List returns all recorded leads in the order they were captured.
func (h *LeadHandler) List(c *fiber.Ctx) error {
	leads, err := h.leads.All()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"count": len(leads),
		"leads": leads,
	})
}
