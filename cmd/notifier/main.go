package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/di"
	"impressions/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("KAFKA_ENABLE and KAFKA_BROKERS are required to run the notifier")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	di.InitializeNotifier().Run(ctx)

	log.Info().Msg("Notifier shut down")
}
