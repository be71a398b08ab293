package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yapcheekian/shortcode/config"
	"github.com/Yapcheekian/shortcode/handlers"
	"github.com/Yapcheekian/shortcode/logger"
	"github.com/Yapcheekian/shortcode/middlewares"
	"github.com/Yapcheekian/shortcode/shortener"
	"github.com/Yapcheekian/shortcode/storage"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Fail to load config")
	}

	logger.Init(cfg.LogLevel)

	store, closeStore, err := newStore(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Fail to init storage")
	}
	defer closeStore()

	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		log.Fatal().Err(err).Msg("Fail to init snowflake node")
	}

	svc := shortener.NewService(store, shortener.NewGenerator(cfg.CodeBytes), node, cfg.MaxAttempts)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())
	handlers.NewShortenerHandler(r, svc, cfg.BaseURL)

	svr := http.Server{
		Addr:    cfg.AppPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", cfg.AppPort).Msg("Server running")
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Fail to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	// Relay incoming SIGTERM, SIGINT to quit
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	log.Info().Msg("Shutting down server...")

	// The context is used to inform the application it has 30 seconds to finish
	// cleaning up remaining resources
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// newStore picks Postgres when a DSN is configured and an in-memory map
// otherwise, optionally fronted by Redis.
func newStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	var (
		store   storage.Store
		closers []func()
	)

	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL is empty, mappings are kept in memory")
		store = storage.NewMemory()
	} else {
		db, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = db.Close() })

		if cfg.DBMigrate {
			n, err := storage.Migrate(db.DB, "./migrations")
			if err != nil {
				_ = db.Close()
				return nil, nil, err
			}
			log.Info().Int("applied", n).Msg("Migrations applied")
		}

		log.Info().Msg("Database connected successfully")
		store = storage.NewPostgres(db)
	}

	if cfg.RedisAddr != "" {
		rClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})

		if err := rClient.Ping(ctx).Err(); err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		closers = append(closers, func() { _ = rClient.Close() })

		store = storage.NewCached(store, rClient, cfg.CacheTTL)
	}

	return store, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}
