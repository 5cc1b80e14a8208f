// Package server exposes the current map over HTTP: JSON regions, SVG and
// PNG renders, and a regeneration endpoint.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"mapgen/internal/mapgen"
)

// Options configures the Fiber app.
type Options struct {
	AppName      string
	RequestLog   bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions enables request logging with ten second timeouts.
func DefaultOptions() Options {
	return Options{
		AppName:      "mapgen API v1.0",
		RequestLog:   true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// New builds the Fiber app serving store.
func New(store *mapgen.Store, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.RequestLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	SetupRoutes(app, NewHandler(store))
	return app
}

// SetupRoutes configures all HTTP routes.
func SetupRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api/v1")
	{
		api.Get("/options", handler.GetOptions)
		api.Get("/map", handler.GetMap)
		api.Get("/map.svg", handler.GetMapSVG)
		api.Get("/map.png", handler.GetMapPNG)
		api.Post("/map/regenerate", handler.Regenerate)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
