package main

import (
	"log"

	"elearn/config"
	adminController "elearn/controllers/admin"
	authController "elearn/controllers/auth"
	interactionController "elearn/controllers/interaction"
	subjectController "elearn/controllers/subject"
	"elearn/database"
	"elearn/routers/adminRoutes"
	"elearn/routers/authRoutes"
	"elearn/routers/interactionRoutes"
	"elearn/routers/subjectRoutes"
	"elearn/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	ledger := services.NewLedger(db)
	xp := services.NewXPEngine(db)
	progress := services.NewProgressService(db)
	comments := services.NewCommentService(db, xp)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded content (thumbnails, documents, slides, videos)
	app.Static("/uploads", cfg.UploadDir)

	authRoutes.SetupAuthRoutes(app, authController.New(db, cfg), cfg)
	subjectRoutes.SetupSubjectRoutes(app, subjectController.New(progress), cfg)
	interactionRoutes.SetupInteractionRoutes(app, interactionController.New(ledger, xp, comments), cfg)
	adminRoutes.SetupAdminRoutes(app, adminController.New(db, cfg), cfg)

	// Periodic XP drift check against the ledger
	reconcileCron, err := services.NewReconciler(db).Start(cfg.ReconcileCron)
	if err != nil {
		log.Fatalf("Failed to start reconcile scheduler: %v", err)
	}
	defer reconcileCron.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
