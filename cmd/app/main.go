package main

import (
	"context"
	"time"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

// @title Frontdesk API
// @version 1.0
// @description Hotel back-office API: bookings, folio ledger and access provisioning.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := app.User.EnsureAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap administrator account")
	}

	app.Scheduler.Start()

	app.HTTP.Serve()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	app.Scheduler.Stop(ctx)

	// let in-flight notifications finish before the process exits
	app.Dispatcher.Wait()

	if err := app.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := app.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Shutdown complete")
}
