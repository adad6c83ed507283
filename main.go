package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mariaztrillo/GLOWYAPI/internal/handlers"
	"github.com/mariaztrillo/GLOWYAPI/internal/repositories"
	"github.com/mariaztrillo/GLOWYAPI/internal/services"
)

// NewApp builds the Fiber application with middleware and all routes
// registered on the given repository.
func NewApp(repo repositories.ProductoRepository) *fiber.App {
	productoService := services.NewProductoService(repo)
	productoHandler := handlers.NewProductoHandler(productoService)

	app := fiber.New()

	app.Use(logger.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":     "Bienvenido a Glowy API - Skincare Coreano",
			"description": "API para gestion de productos de belleza coreanos",
		})
	})

	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "pong",
			"service": "Glowy API",
		})
	})

	// Browsers request this on every visit; answer 204 to keep logs clean.
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	productoHandler.RegisterRoutes(app)

	return app
}

func main() {
	// A local .env file is optional; deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	viper.SetDefault("APP_PORT", ":8000")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")

	var repo repositories.ProductoRepository
	var db *sql.DB

	if databaseDSN == "" {
		log.Println("DATABASE_DSN not set, using in-memory product repository")
		repo = repositories.NewMemoryProductoRepository()
	} else {
		var err error
		db, err = sql.Open("mysql", databaseDSN)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("Failed to reach database: %v", err)
		}

		sqlRepo := repositories.NewSQLProductoRepository(db)
		if err := sqlRepo.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		repo = sqlRepo
	}

	app := NewApp(repo)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting Glowy API on %s", appPort)
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if db != nil {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	log.Println("Server gracefully stopped")
}
