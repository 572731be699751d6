package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/epic-cs/epic-test-backend/internal/app"
	"github.com/epic-cs/epic-test-backend/internal/config"
	"github.com/epic-cs/epic-test-backend/internal/store"
	"github.com/epic-cs/epic-test-backend/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = logger.FromConfig(cfg.Logging)

	st, err := store.NewMongoStore(context.Background(), cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create database client")
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	if err := st.Ping(pingCtx); err != nil {
		// The service still boots; /test reports store connectivity.
		log.Warn().Err(err).Msg("Database not reachable at startup")
	} else {
		log.Info().Msg("Database connection established")
	}
	cancel()

	application, err := app.New(cfg, log, st)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to run application")
		}
	}()

	log.Info().Msgf("EPIC Test Backend started on %s", cfg.Server.Address())

	<-ctx.Done()
	log.Info().Msg("Shutting down EPIC Test Backend...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown gracefully")
	}

	if err := st.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}

	log.Info().Msg("EPIC Test Backend stopped")
}
