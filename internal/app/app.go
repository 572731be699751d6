package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/epic-cs/epic-test-backend/internal/config"
	"github.com/epic-cs/epic-test-backend/internal/delivery/httpd"
	"github.com/epic-cs/epic-test-backend/internal/metrics"
	"github.com/epic-cs/epic-test-backend/internal/service"
	"github.com/epic-cs/epic-test-backend/internal/store"
)

type App struct {
	server *http.Server
	logger zerolog.Logger
	config *config.Config
	store  store.Store
}

func New(cfg *config.Config, log zerolog.Logger, st store.Store) (*App, error) {
	registrationService := service.NewRegistrationService(st, log)
	paymentService := service.NewPaymentService(st, log)
	testService := service.NewTestService(st, log)
	diagnosticsService := service.NewDiagnosticsService(st, log)

	handler := httpd.NewHandler(
		registrationService,
		paymentService,
		testService,
		diagnosticsService,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(metrics.Middleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server: server,
		logger: log,
		config: cfg,
		store:  st,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting EPIC test backend on %s", a.config.Server.Address())
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down EPIC test backend...")
	return a.server.Shutdown(ctx)
}
