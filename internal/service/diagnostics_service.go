package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/epic-cs/epic-test-backend/internal/models"
	"github.com/epic-cs/epic-test-backend/internal/store"
)

const maxDiagnosticsCollections = 10

type DiagnosticsService interface {
	// Check reports liveness and best-effort store connectivity. It never
	// returns an error; store failures are summarized inline.
	Check(ctx context.Context) *models.DiagnosticsResponse
}

type diagnosticsService struct {
	store  store.Store
	logger zerolog.Logger
}

func NewDiagnosticsService(st store.Store, logger zerolog.Logger) DiagnosticsService {
	return &diagnosticsService{
		store:  st,
		logger: logger,
	}
}

func (s *diagnosticsService) Check(ctx context.Context) *models.DiagnosticsResponse {
	resp := &models.DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envPresence("DATABASE_URL"),
		DatabaseName:     envPresence("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Diagnostics ping failed")
		resp.Database = "error: " + truncate(err.Error(), 50)
		return resp
	}
	resp.ConnectionStatus = "connected"

	names, err := s.store.ListCollections(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Diagnostics collection listing failed")
		resp.Database = "error: " + truncate(err.Error(), 50)
		return resp
	}
	if len(names) > maxDiagnosticsCollections {
		names = names[:maxDiagnosticsCollections]
	}
	if len(names) > 0 {
		resp.Collections = names
	}
	resp.Database = "connected"

	return resp
}

// envPresence reports whether a setting is configured without revealing it.
func envPresence(name string) string {
	if os.Getenv(name) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
