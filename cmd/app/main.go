package main

import (
	"portfolio/config"
	"portfolio/di"
	"portfolio/helper"
	"portfolio/infras/metrics"
	"portfolio/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Portfolio API
// @version 1.0
// @description Booking intake, admin booking visibility, blog, projects, tours and newsletter.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	metrics.Register()

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
