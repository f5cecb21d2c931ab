package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weathersvc.app/internal/app"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Configuration loaded successfully",
		"http_port", cfg.Server.Port,
		"grpc_port", cfg.Server.GRPCPort,
		"cache", cfg.Cache.Type.String(),
		"providers", cfg.Weather.ProviderOrder,
		"notifications", cfg.Notifications.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting weather service...")
		errCh <- application.Start(ctx)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	case err := <-errCh:
		if err != nil {
			slog.Error("Application stopped with error", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
		exitCode = 1
	}

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
