package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/barberflow/barberflow-api/booking"
	"github.com/barberflow/barberflow-api/config"
	"github.com/barberflow/barberflow-api/controllers"
	"github.com/barberflow/barberflow-api/cron"
	"github.com/barberflow/barberflow-api/db"
	"github.com/barberflow/barberflow-api/redis"
	"github.com/barberflow/barberflow-api/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Init(cfg.DatabaseURL)
	db.Migrate()
	redis.InitRedis(cfg.RedisAddr)

	store := booking.NewGormStore(db.DB)
	manager := booking.NewManager(store, cfg.Windows, cfg.Granularity, cfg.Location)
	controllers.Setup(cfg, manager)

	cron.StartCronJobs(cfg)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BarberFlow API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app, cfg.JWTSecret)
	routes.SetupAppointmentRoutes(app, cfg.JWTSecret)
	routes.SetupExpenseRoutes(app, cfg.JWTSecret)
	routes.SetupDashboardRoutes(app, cfg.JWTSecret)

	log.Fatal(app.Listen(":" + cfg.Port))
}
