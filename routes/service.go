package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/controllers"
	"github.com/barberflow/barberflow-api/middleware"
)

func SetupServiceRoutes(app *fiber.App, jwtSecret string) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(jwtSecret), controllers.CreateService)
	service.Put("/:id", middleware.Protected(jwtSecret), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(jwtSecret), controllers.DeleteService)
}
