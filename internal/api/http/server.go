package httpapi

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options configures NewApp.
type Options struct {
	AppName string
	// AccessLog enables fiber's request logger.
	AccessLog bool
	// Metrics is served at /metrics when set.
	Metrics http.Handler
}

// NewApp builds the Fiber app with middleware, health, metrics and API routes.
func NewApp(opts Options, weatherSvc WeatherService, quotes QuoteService, themes ThemeSource) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          ErrorHandler,
	})

	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": opts.AppName,
		})
	})

	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics))
	}

	RegisterRoutes(app, weatherSvc, quotes, themes)
	return app
}
