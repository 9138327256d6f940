// Package server composes the adapters into a running service: config in,
// HTTP and metrics listeners out, graceful shutdown on signal.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"wallboard/internal/config"
	"wallboard/internal/httpapi"
	"wallboard/internal/logging"
	"wallboard/internal/metrics"
	"wallboard/internal/pullups"
	"wallboard/internal/sonos"
	"wallboard/internal/transit/bus"
	"wallboard/internal/transit/train"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *pullups.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default adapter wiring. It opens the counter
// database, so startup fails if the data directory is unusable.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	store, err := pullups.Open(cfg.Pullups.DatabasePath)
	if err != nil {
		return nil, err
	}
	return newServerWithStore(cfg, logger, store), nil
}

func newServerWithStore(cfg config.Config, logger *slog.Logger, store *pullups.Store) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	busClient := bus.NewClient(bus.Config{
		BaseURL: cfg.CTA.BusBaseURL,
		APIKey:  cfg.CTA.BusKey,
	})
	trainClient := train.NewClient(train.Config{
		BaseURL: cfg.CTA.TrainBaseURL,
		APIKey:  cfg.CTA.TrainKey,
	})
	sportsService := buildSportsService(cfg.Sports, logger, recorder)
	sonosClient := sonos.NewClient(sonos.Config{Credentials: cfg.Sonos})

	handler := httpapi.NewHandler(busClient, trainClient, sportsService, sonosClient, store, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         store,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: mux,
		}}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the listeners, then waits for context cancellation to shut down
// gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onExit func(error)) {
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logging.Error(logger, name+" server exited", err)
		}
		if onExit != nil {
			onExit(err)
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logging.Warn(s.logger, "counter store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}
