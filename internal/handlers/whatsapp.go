package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/patrisenra/pasenca/internal/services"
)

// WhatsAppHandler handles the Meta WhatsApp Cloud API webhook: the GET
// verification handshake and inbound message delivery.
type WhatsAppHandler struct {
	bot         *services.Bot
	sender      *services.WhatsAppService // nil when outbound is not configured
	verifyToken string
}

// NewWhatsAppHandler creates a new Cloud API webhook handler.
func NewWhatsAppHandler(bot *services.Bot, sender *services.WhatsAppService, verifyToken string) *WhatsAppHandler {
	return &WhatsAppHandler{
		bot:         bot,
		sender:      sender,
		verifyToken: verifyToken,
	}
}

// HandleVerify answers the subscription handshake: Meta calls GET /webhook
// with hub.mode, hub.verify_token and hub.challenge, and expects the
// challenge echoed back when the token matches.
func (h *WhatsAppHandler) HandleVerify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken && challenge != "" {
		return c.SendString(challenge)
	}

	return c.Status(fiber.StatusForbidden).SendString("Verification failed")
}

// CloudAPIPayload is the webhook envelope Meta posts for incoming messages.
type CloudAPIPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		Changes []struct {
			Field string `json:"field"`
			Value struct {
				MessagingProduct string `json:"messaging_product"`
				Contacts         []struct {
					WaID string `json:"wa_id"`
				} `json:"contacts"`
				Messages []struct {
					From string `json:"from"`
					ID   string `json:"id"`
					Type string `json:"type"`
					Text *struct {
						Body string `json:"body"`
					} `json:"text,omitempty"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// firstTextMessage digs the sender id and text out of the envelope. Status
// updates and non-text messages are skipped.
func (p *CloudAPIPayload) firstTextMessage() (from, text string, ok bool) {
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type == "text" && msg.Text != nil && msg.From != "" {
					return msg.From, msg.Text.Body, true
				}
			}
		}
	}
	return "", "", false
}

// HandleWebhook processes incoming Cloud API deliveries. The webhook is
// always acknowledged with 200 so Meta does not retry; processing problems
// are only logged.
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload CloudAPIPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.SendStatus(fiber.StatusOK)
	}

	from, text, ok := payload.firstTextMessage()
	if !ok {
		return c.SendStatus(fiber.StatusOK)
	}

	log.Printf("📱 WhatsApp message from %s: %s", from, text)
	response := h.bot.Reply(from, text)

	if h.sender != nil {
		if err := h.sender.SendText(from, response); err != nil {
			log.Printf("❌ Failed to send WhatsApp response: %v", err)
		}
	} else {
		log.Printf("📤 Response (not sent - Cloud API not configured): %s", response)
	}

	return c.SendStatus(fiber.StatusOK)
}
