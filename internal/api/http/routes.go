package httpapi

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/quote"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// WeatherService produces the weather card.
type WeatherService interface {
	GetReport(ctx context.Context) (weather.Report, error)
}

// QuoteService produces the quote card. It never fails.
type QuoteService interface {
	GetQuote(ctx context.Context) quote.Record
	Refresh(ctx context.Context) quote.Record
}

// ThemeSource supplies the theme for the page background.
type ThemeSource interface {
	Theme() weather.ThemeDescriptor
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, weatherSvc WeatherService, quotes QuoteService, themes ThemeSource) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		report, err := weatherSvc.GetReport(c.UserContext())
		if err != nil {
			var pErr *weather.PipelineError
			if errors.As(err, &pErr) {
				return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
					"error":   true,
					"message": "Unable to load weather data",
					"stage":   pErr.Stage,
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load weather data")
		}
		return c.JSON(report)
	})

	v1.Get("/quote", func(c *fiber.Ctx) error {
		return c.JSON(quotes.GetQuote(c.UserContext()))
	})

	v1.Post("/quote/refresh", func(c *fiber.Ctx) error {
		return c.JSON(quotes.Refresh(c.UserContext()))
	})

	v1.Get("/theme", func(c *fiber.Ctx) error {
		return c.JSON(themes.Theme())
	})

	v1.Get("/conditions/:code", func(c *fiber.Ctx) error {
		code, err := strconv.Atoi(c.Params("code"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "weather code must be an integer")
		}
		cond := weather.Classify(code)
		return c.JSON(fiber.Map{
			"code":      code,
			"condition": cond.Label,
			"icon":      cond.Icon,
		})
	})
}

// ErrorHandler renders every error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
