package main

import (
	"context"

	"atrium/config"
	"atrium/di"
	"atrium/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	s := di.InitializeSeeder()

	if err := s.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().Msg("Seeding completed")
}
