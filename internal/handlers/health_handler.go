package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const readyTimeout = 2 * time.Second

// HandleHealth is the liveness probe.
func HandleHealth(c *fiber.Ctx) error {
	return success(c, fiber.StatusOK, fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// HandleReady reports 503 until ping reaches the store.
func HandleReady(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			slog.Warn("Readiness check failed", "error", err)
			return failure(c, fiber.StatusServiceUnavailable, "Database unavailable")
		}
		return success(c, fiber.StatusOK, fiber.Map{
			"status": "ready",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// HandleRouteNotFound is the fallback for unmatched method+path pairs.
func HandleRouteNotFound(c *fiber.Ctx) error {
	return failure(c, fiber.StatusNotFound, "Route not found")
}
