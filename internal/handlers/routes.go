package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "SoundVibe Compatibility API"
	serviceVersion = "1.0.0"
)

// SetupRoutes registers the public routes. The match handler is optional and
// its route is only mounted when a profile store is available.
func SetupRoutes(app *fiber.App, compatHandler *CompatibilityHandler, matchHandler *MatchHandler) {
	endpoints := []string{
		"POST /api/v1/compatibility",
		"POST /functions/v1/calculate-compatibility",
	}

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/compatibility", compatHandler.HandleCalculate)
	app.Post("/functions/v1/calculate-compatibility", compatHandler.HandleCalculate)

	if matchHandler != nil {
		api.Get("/profiles/:id/matches", matchHandler.HandleGetMatches)
		endpoints = append(endpoints, "GET /api/v1/profiles/:id/matches")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   serviceName,
			"version":   serviceVersion,
			"endpoints": endpoints,
		})
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
