package main

import (
	"github.com/rs/zerolog/log"

	"tourism/config"
	di "tourism/di/catalog"
	_ "tourism/docs"
	"tourism/helper"
	"tourism/migrations"
	"tourism/shared/logger"
	"tourism/shared/timezone"
)

// @title Tourism Booking API
// @version 1.0
// @description Catalog service.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()

	cfg := config.MustLoad()

	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg, migrations.ServiceCatalog); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	server, cleanup, err := di.InitializeService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize catalog service")
	}
	defer cleanup()

	server.Serve()
}
