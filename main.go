package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/handlers"
	"blogly/internal/metrics"
	"blogly/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	db, err := database.Open(cfg.Database)
	if err != nil {
		slog.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// A nil interface disables publishing; never store a nil *rabbitmq.Client in it.
	var publisher handlers.EventPublisher
	if cfg.Events.Enabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.Events.URL, Queue: cfg.Events.Queue})
		if err != nil {
			slog.Error("failed to initialize RabbitMQ client", slog.Any("error", err))
			os.Exit(1)
		}
		defer mqClient.Close()
		publisher = mqClient

		err = mqClient.Consume(func(event rabbitmq.Event) error {
			slog.Info("event received",
				slog.String("id", event.ID),
				slog.String("type", event.Type),
				slog.Uint64("entity_id", uint64(event.EntityID)),
			)
			return nil
		})
		if err != nil {
			slog.Error("failed to start RabbitMQ consumer", slog.Any("error", err))
		}
	}

	app := NewApp(cfg, db, publisher, metrics.New())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", slog.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			slog.Error("server failed", slog.Any("error", err))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		slog.Error("error during shutdown", slog.Any("error", err))
	}
	slog.Info("server gracefully stopped")
}
