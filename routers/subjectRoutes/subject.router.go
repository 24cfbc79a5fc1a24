package subjectRoutes

import (
	"elearn/config"
	subjectController "elearn/controllers/subject"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectRoutes(app *fiber.App, ctl *subjectController.Controller, cfg *config.Config) {
	subjectGroup := app.Group("/subjects")

	subjectGroup.Get("/", middleware.JWTMiddleware(cfg), ctl.List)
	subjectGroup.Get("/:id", middleware.JWTMiddleware(cfg), ctl.Detail)
}
