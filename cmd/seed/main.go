package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/di"
	"impressions/helper"
	"impressions/shared/logger"
)

// Creates or resets the admin account and, when enabled, fills empty
// collections with sample content.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cfg.ValidateSeed(); err != nil {
		log.Fatal().Err(err).Msg("Invalid seed configuration")
	}

	if err := helper.Up(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := di.InitializeSeeder().Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed") //nolint:gocritic
	}

	log.Info().Msg("Seeding completed")
}
