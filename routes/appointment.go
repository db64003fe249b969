package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/controllers"
	"github.com/barberflow/barberflow-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, jwtSecret string) {
	app.Get("/availability", controllers.GetAvailability)

	appointment := app.Group("/appointments")
	appointment.Post("/", controllers.CreateAppointment) // public client booking
	appointment.Get("/", middleware.Protected(jwtSecret), controllers.GetAllAppointments)
	appointment.Get("/archived", middleware.Protected(jwtSecret), controllers.GetArchivedAppointments)
	appointment.Get("/:id", middleware.Protected(jwtSecret), controllers.GetAppointment)
	appointment.Put("/:id/status", middleware.Protected(jwtSecret), controllers.UpdateAppointmentStatus)
	appointment.Put("/:id/archive", middleware.Protected(jwtSecret), controllers.ArchiveAppointment)
}
