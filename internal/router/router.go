// Package router assembles the Fiber application: middleware, API routes,
// health and metrics endpoints, and the 404 fallback.
package router

import (
	"context"
	"errors"
	"log/slog"

	"gudang/internal/database"
	"gudang/internal/handlers"
	"gudang/internal/metrics"
	"gudang/internal/middleware"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options configures New.
type Options struct {
	DB      *gorm.DB
	Events  services.EventPublisher // optional
	Metrics *metrics.Metrics        // optional; a private registry is created when nil
	// AccessLog enables Fiber's request logger.
	AccessLog bool
}

// New wires repositories, services and handlers onto a fresh Fiber app.
func New(opts Options) *fiber.App {
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	// --- Repositories ---
	itemRepo := repositories.NewGORMItemRepository(opts.DB)
	settingsRepo := repositories.NewGORMSettingsRepository(opts.DB)
	goalRepo := repositories.NewGORMGoalRepository(opts.DB)

	// --- Services ---
	itemService := services.NewItemService(itemRepo, opts.Events)
	userService := services.NewUserService(settingsRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	goalService := services.NewGoalService(goalRepo)
	analyticsService := services.NewAnalyticsService(itemService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		AppName:      "gudang",
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Metrics(m))
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/", handlers.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	api := app.Group("/api")
	api.Get("/health", handlers.HandleHealth)
	api.Get("/ready", handlers.HandleReady(func(ctx context.Context) error {
		return database.Ping(ctx, opts.DB)
	}))
	handlers.NewUserHandler(userService).RegisterRoutes(api)
	handlers.NewItemHandler(itemService).RegisterRoutes(api)
	handlers.NewAnalyticsHandler(analyticsService).RegisterRoutes(api)
	handlers.NewSettingsHandler(settingsService).RegisterRoutes(api)
	handlers.NewGoalHandler(goalService).RegisterRoutes(api)

	app.Use(handlers.HandleRouteNotFound)

	return app
}

// errorHandler renders errors that escaped a handler, including recovered panics,
// as the standard envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		slog.Error("Unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
