package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/vancomm/minesweeper/internal/config"
)

func main() {
	dotEnvErr := config.LoadDotEnv()

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	if dotEnvErr != nil {
		logger.Error("failed to load .env", "error", dotEnvErr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	if err := newRootCommand(logger).ExecuteContext(ctx); err != nil {
		logger.Error("exit", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}
