package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/controllers"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/login", controllers.Login)
}
