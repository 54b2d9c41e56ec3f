package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/patrisenra/pasenca/database"
	"github.com/patrisenra/pasenca/internal/models"
	"github.com/patrisenra/pasenca/internal/routes"
	"github.com/patrisenra/pasenca/internal/services"
	"github.com/patrisenra/pasenca/internal/storage"
)

const defaultVerifyToken = "pasenca_verify_2026"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	verifyToken := os.Getenv("VERIFY_TOKEN")
	if verifyToken == "" {
		verifyToken = defaultVerifyToken
	}

	// Sessions always live in memory for the process lifetime. Leads go to
	// Postgres when a database store is requested, so the follow-up tooling
	// can read them after a restart.
	sessions := storage.NewMemorySessionStore()

	var leads storage.LeadStore
	if os.Getenv("USE_DATABASE_STORE") == "true" {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(); err != nil {
			log.Fatal(err)
		}

		if err := database.DB.AutoMigrate(&models.Lead{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		leads = storage.NewDatabaseLeadStore(database.DB)
	} else {
		log.Println("⚠️  Using in-memory lead storage (leads are lost on restart)")
		leads = storage.NewMemoryLeadStore()
	}

	bot := services.NewBot(sessions, leads)

	// Outbound senders are optional: without credentials the bot still
	// answers on the debug endpoint and logs what it would have sent.
	cloudSender, err := services.NewWhatsAppService()
	if err != nil {
		log.Printf("⚠️  Cloud API sender not configured: %v", err)
	}

	twilioSender, err := services.NewTwilioService()
	if err != nil {
		log.Printf("⚠️  Twilio sender not configured: %v", err)
	}

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Pasenca WhatsApp Bot v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, bot, leads, cloudSender, twilioSender, verifyToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Pasenca WhatsApp Bot starting on port %s", port)
	log.Printf("📱 Cloud API sender: %s", senderStatus(cloudSender != nil))
	log.Printf("📱 Twilio sender: %s", senderStatus(twilioSender != nil))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func senderStatus(configured bool) string {
	if configured {
		return "Configured"
	}
	return "Not configured"
}
