package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/controllers"
	"github.com/barberflow/barberflow-api/middleware"
)

func SetupExpenseRoutes(app *fiber.App, jwtSecret string) {
	expense := app.Group("/expenses", middleware.Protected(jwtSecret))
	expense.Get("/", controllers.GetMonthExpenses)
	expense.Post("/", controllers.CreateExpense)
	expense.Delete("/:id", controllers.DeleteExpense)
}
