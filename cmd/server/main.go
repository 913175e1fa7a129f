package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/okrflow/okrflow-api/internal/config"
	"github.com/okrflow/okrflow-api/internal/database"
	"github.com/okrflow/okrflow-api/internal/middleware"
	"github.com/okrflow/okrflow-api/internal/routes"
	"github.com/okrflow/okrflow-api/internal/store"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	middleware.Setup(cfg.JWTSecret)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	store.Init(database.DB)

	app := fiber.New(fiber.Config{
		AppName: "okrflow-api",
	})
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Setup(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}
