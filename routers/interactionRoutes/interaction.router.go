package interactionRoutes

import (
	"elearn/config"
	interactionController "elearn/controllers/interaction"
	"elearn/middleware"
	interactionValidator "elearn/validators/interaction"

	"github.com/gofiber/fiber/v2"
)

func SetupInteractionRoutes(app *fiber.App, ctl *interactionController.Controller, cfg *config.Config) {
	interactionGroup := app.Group("/interactions", middleware.JWTMiddleware(cfg))

	interactionGroup.Post("/progress", interactionValidator.MarkComplete(), ctl.MarkComplete)

	interactionGroup.Post("/bookmark", interactionValidator.ToggleBookmark(), ctl.ToggleBookmark)
	interactionGroup.Get("/bookmark", ctl.ListBookmarks)

	interactionGroup.Post("/comment", interactionValidator.PostComment(), ctl.PostComment)
	interactionGroup.Get("/comment/:chapterId", ctl.ListComments)

	interactionGroup.Get("/leaderboard", ctl.Leaderboard)
}
