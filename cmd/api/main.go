package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"quotient/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config (.env is optional, real env wins).
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		slog.Error("api bootstrap failed",
			"event", "api_bootstrap_failed",
			"error", err.Error(),
		)
		os.Exit(1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("api server stopped",
			"event", "api_server_stopped",
			"error", err.Error(),
		)
		os.Exit(1)
	}
}
