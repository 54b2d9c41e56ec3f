package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/patrisenra/pasenca/internal/services"
)

// DebugHandler simulates a conversation without going through WhatsApp,
// for development and manual testing.
type DebugHandler struct {
	bot *services.Bot
}

// NewDebugHandler creates a new debug handler.
func NewDebugHandler(bot *services.Bot) *DebugHandler {
	return &DebugHandler{bot: bot}
}

// SimulatePayload is the body of a simulated message.
type SimulatePayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleSimulate feeds a message to the engine and reports the reply along
// with the session state after the turn.
func (h *DebugHandler) HandleSimulate(c *fiber.Ctx) error {
	var payload SimulatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Simulated message from %s: %s", payload.From, payload.Message)

	response := h.bot.Reply(payload.From, payload.Message)
	state, data := h.bot.SessionSnapshot(payload.From)

	return c.JSON(fiber.Map{
		"success":  true,
		"response": response,
		"session": fiber.Map{
			"state": state,
			"data":  data,
		},
	})
}
