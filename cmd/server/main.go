package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/shipra/internal/config"
	"github.com/example/shipra/internal/database"
	"github.com/example/shipra/internal/handlers"
	"github.com/example/shipra/internal/routes"
	"github.com/example/shipra/internal/store"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.Seed(db); err != nil {
		log.Printf("demo seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Shipra Backend",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, store.NewGormStore(db), cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
