package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gudang/internal/config"
	"gudang/internal/database"
	"gudang/internal/metrics"
	"gudang/internal/router"
	"gudang/internal/services"
	"gudang/pkg/logging"
	"gudang/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Database ready", "driver", cfg.DBDriver, "production", cfg.IsProduction())

	// --- Item events (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			slog.Error("Failed to initialize RabbitMQ client", "error", err)
			os.Exit(1)
		}
		defer mqClient.Close()
		events = mqClient
	} else {
		slog.Info("RABBITMQ_URL not set, item events disabled")
	}

	app := router.New(router.Options{
		DB:        db,
		Events:    events,
		Metrics:   metrics.New(),
		AccessLog: true,
	})

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Starting server", "address", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			slog.Error("Server failed to start", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Error during Fiber shutdown", "error", err)
	}
	slog.Info("Server gracefully stopped")
}
