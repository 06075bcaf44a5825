package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/helper"
	"tourism/shared/logger"
)

const (
	argLength = 3
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("usage: migrate <auth|catalog|booking|inventory> <up|down|drop|step-up>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := helper.Runner(cfg, os.Args[1], os.Args[2]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
