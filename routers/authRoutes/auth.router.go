package authRoutes

import (
	authController "elearn/controllers/auth"
	"elearn/config"
	"elearn/middleware"
	authValidator "elearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller, cfg *config.Config) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), ctl.Register)
	authGroup.Post("/login", authValidator.Login(), ctl.Login)
	authGroup.Put("/profile", middleware.JWTMiddleware(cfg), authValidator.UpdateProfile(), ctl.UpdateProfile)
}
