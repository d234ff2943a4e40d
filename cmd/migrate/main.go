package main

import (
	"os"

	"github.com/Rrens/space-reservation/internal/config"
	"github.com/Rrens/space-reservation/internal/logger"
	"github.com/Rrens/space-reservation/internal/repository/postgres"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	down := flag.IntP("down", "d", 0, "roll back this many migrations instead of migrating up")
	source := flag.StringP("source", "s", "", "migration source URL (defaults to database.migrations)")
	flag.Parse()

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.Setup(cfg.Logging, os.Getenv("ENV") == "production"); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	sourceURL := cfg.Database.Migrations
	if *source != "" {
		sourceURL = *source
	}

	dsn := cfg.Database.DSN()
	if *down > 0 {
		if err := postgres.RollbackMigrations(dsn, sourceURL, *down); err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
		return
	}

	if err := postgres.RunMigrations(dsn, sourceURL); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
