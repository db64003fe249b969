package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/controllers"
	"github.com/barberflow/barberflow-api/middleware"
)

func SetupDashboardRoutes(app *fiber.App, jwtSecret string) {
	app.Get("/dashboard", middleware.Protected(jwtSecret), controllers.GetDashboardOverview)
}
