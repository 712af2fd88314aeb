package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/distribution"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/internal/config"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/internal/logging"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := logging.NewDefaultLogger()

	// Every catalog entry must describe and compute with its own defaults
	// before we take traffic; a defective implementation fails here, not
	// on the first request that hits it.
	checkCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := distribution.CheckAll(checkCtx); err != nil {
		cancel()
		log.Fatalf("catalog self-check failed: %v", err)
	}
	cancel()
	logger.Info("catalog self-check passed for %d kinds", len(distribution.Kinds()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := ui.NewServer(cfg, logger)
	logger.Info("listening on :%s", cfg.Server.Port)
	if err := server.Run(ctx, ":"+cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
