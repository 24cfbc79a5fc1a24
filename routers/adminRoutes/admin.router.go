package adminRoutes

import (
	"elearn/config"
	adminController "elearn/controllers/admin"
	"elearn/middleware"
	adminValidator "elearn/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, ctl *adminController.Controller, cfg *config.Config) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware(cfg), middleware.AdminOnly())

	adminGroup.Post("/subjects", ctl.CreateSubject)
	adminGroup.Put("/subjects/:id", ctl.UpdateSubject)
	adminGroup.Delete("/subjects/:id", ctl.DeleteSubject)

	adminGroup.Post("/chapters", adminValidator.CreateChapter(), ctl.CreateChapter)
	adminGroup.Put("/chapters/:id", adminValidator.UpdateChapter(), ctl.UpdateChapter)
	adminGroup.Delete("/chapters/:id", ctl.DeleteChapter)

	// Materials accept an uploaded file or a direct content URL
	adminGroup.Post("/materials", ctl.CreateMaterial)
	adminGroup.Put("/materials/:id", ctl.UpdateMaterial)
	adminGroup.Delete("/materials/:id", ctl.DeleteMaterial)
}
