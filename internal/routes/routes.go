package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/patrisenra/pasenca/internal/handlers"
	"github.com/patrisenra/pasenca/internal/middleware"
	"github.com/patrisenra/pasenca/internal/services"
	"github.com/patrisenra/pasenca/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	bot *services.Bot,
	leads storage.LeadStore,
	cloudSender *services.WhatsAppService,
	twilioSender *services.TwilioService,
	verifyToken string,
) {
	whatsappHandler := handlers.NewWhatsAppHandler(bot, cloudSender, verifyToken)
	twilioHandler := handlers.NewTwilioHandler(bot, twilioSender)
	debugHandler := handlers.NewDebugHandler(bot)
	leadHandler := handlers.NewLeadHandler(leads)
	healthHandler := handlers.NewHealthHandler("1.0.0")

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Pasenca WhatsApp Bot",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":         "/health",
				"webhook":        "/webhook",
				"webhook_twilio": "/webhook/twilio",
				"test_whatsapp":  "/test/whatsapp",
				"admin":          "/admin",
			},
		})
	})

	app.Get("/health", healthHandler.Check)

	// ========== WEBHOOK ROUTES ==========

	// Meta Cloud API: verification handshake + message delivery
	app.Get("/webhook", whatsappHandler.HandleVerify)
	app.Post("/webhook", whatsappHandler.HandleWebhook)

	// Twilio channel - ENVIRONMENT-AWARE VALIDATION
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: skip validation for ngrok
		app.Post("/webhook/twilio", twilioHandler.HandleWebhook)
	} else {
		app.Post("/webhook/twilio", middleware.ValidateTwilioSignature(), twilioHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	app.Post("/test/whatsapp", debugHandler.HandleSimulate)

	// ========== ADMIN ROUTES ==========
	admin := app.Group("/admin")
	admin.Get("/leads", leadHandler.List)
}
