package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/config"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/handlers"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/middleware"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"

	_ "github.com/MosabAboidrees/AirBnB-clone-v3/docs" // Swagger docs
)

// @title AirBnB Clone API
// @version 1.0.0
// @description REST API over states, cities, amenities, users, places and reviews with file or database storage

// @contact.name API Support
// @contact.url https://github.com/MosabAboidrees/AirBnB-clone-v3

// @host localhost:5000
// @BasePath /api/v1
// @schemes http

func main() {
	// Load .env if present, environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Build and load the storage engine
	eng, err := storage.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create storage engine: %v", err)
	}
	if err := eng.Reload(); err != nil {
		log.Fatalf("Failed to load storage: %v", err)
	}
	defer eng.Close()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("airbnb-clone")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api/v1
	api := app.Group("/api/v1")
	api.Use(middleware.APIVersion())
	handlers.Register(api, eng)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s with %s storage", cfg.Port, cfg.StorageType)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code == fiber.StatusNotFound {
		message = "Not found"
	}

	var storageErr *types.StorageError
	if errors.As(err, &storageErr) {
		log.Printf("Storage error: %v", storageErr)
		code = fiber.StatusInternalServerError
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
