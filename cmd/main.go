package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/insta-repost-curator/internal/app"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.New(logger.Opts{}).Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(logger.Opts{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	defer logger.Flush(2 * time.Second)

	app := fx.New(
		fx.Logger(log),
		app.Module,
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	// Gracefully shutdown the application
	if err := app.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}
