package main

import (
	"context"
	"errors"
	"flag"

	"github.com/Yapcheekian/shortcode/config"
	"github.com/Yapcheekian/shortcode/logger"
	"github.com/Yapcheekian/shortcode/storage"
	"github.com/rs/zerolog/log"
)

var dir = flag.String("dir", "./migrations", "directory holding the SQL migrations")

func main() {
	flag.Parse()

	n, err := run(context.Background(), *dir)
	if err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	log.Info().Int("applied", n).Msg("migrations applied")
}

// run applies the migrations in dir to DATABASE_URL and reports how many
// were applied.
func run(ctx context.Context, dir string) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}
	logger.Init(cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		return 0, errors.New("DATABASE_URL is required")
	}

	db, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	return storage.Migrate(db.DB, dir)
}
