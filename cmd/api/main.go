package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/recipfy/recipe-service/config"
	"github.com/recipfy/recipe-service/internal/database"
	"github.com/recipfy/recipe-service/internal/logger"
	"github.com/recipfy/recipe-service/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.New(cfg)

	db, err := database.New(cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db.DB, appLog); err != nil {
		appLog.Fatal().Err(err).Msg("failed to prepare schema")
	}

	srv := server.New(cfg, db, appLog)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			appLog.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		appLog.Info().Str("signal", sig.String()).Msg("received signal")
	}

	appLog.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal().Err(err).Msg("server shutdown error")
	}
	appLog.Info().Msg("server stopped")
}
