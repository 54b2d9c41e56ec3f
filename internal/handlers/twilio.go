package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/patrisenra/pasenca/internal/services"
)

// TwilioHandler handles inbound WhatsApp messages delivered by Twilio
// (form-encoded payloads), the alternative channel to the Cloud API.
type TwilioHandler struct {
	bot    *services.Bot
	sender *services.TwilioService // nil when outbound is not configured
}

// NewTwilioHandler creates a new Twilio webhook handler.
func NewTwilioHandler(bot *services.Bot, sender *services.TwilioService) *TwilioHandler {
	return &TwilioHandler{
		bot:    bot,
		sender: sender,
	}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio.
type TwilioWebhookPayload struct {
	MessageSid string `form:"MessageSid"`
	AccountSid string `form:"AccountSid"`
	From       string `form:"From"` // "whatsapp:+34600123456"
	To         string `form:"To"`
	Body       string `form:"Body"`
}

// HandleWebhook processes incoming Twilio WhatsApp messages.
func (h *TwilioHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing Twilio webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	if payload.Body == "" || payload.From == "" {
		// Status callbacks and media-only messages: nothing to do.
		return c.SendStatus(fiber.StatusOK)
	}

	from := strings.TrimPrefix(payload.From, "whatsapp:")
	log.Printf("📱 WhatsApp message from %s: %s", from, payload.Body)

	response := h.bot.Reply(from, payload.Body)

	if h.sender != nil {
		if err := h.sender.SendWhatsAppMessage(from, response); err != nil {
			log.Printf("❌ Failed to send WhatsApp response: %v", err)
		}
	} else {
		log.Printf("📤 Response (not sent - Twilio not configured): %s", response)
	}

	return c.SendStatus(fiber.StatusOK)
}
