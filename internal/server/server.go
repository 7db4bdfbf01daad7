package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/config"
	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/feed"
	"github.com/Alejomarqz/liganacionalgt-live/internal/feed/ligadata"
	httpserver "github.com/Alejomarqz/liganacionalgt-live/internal/http"
	"github.com/Alejomarqz/liganacionalgt-live/internal/http/handlers"
	"github.com/Alejomarqz/liganacionalgt-live/internal/http/middleware"
	"github.com/Alejomarqz/liganacionalgt-live/internal/logging"
	"github.com/Alejomarqz/liganacionalgt-live/internal/metrics"
	"github.com/Alejomarqz/liganacionalgt-live/internal/session"
	"github.com/Alejomarqz/liganacionalgt-live/internal/store"
)

var metricsSetup = metrics.Setup

// Server assembles the feed client, per-scope sessions and the HTTP surface.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	sessions      map[matches.Scope]*session.Session
	httpServer    *http.Server
	metricsServer *http.Server
	metricsStop   func(context.Context) error
}

// New constructs a server with default feed wiring.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	client := ligadata.NewClient(ligadata.Config{
		BaseURL:       cfg.Feed.BaseURL,
		DisplayOffset: &cfg.Feed.DisplayOffset,
		DetailRate:    cfg.Feed.DetailRate,
		DetailBurst:   cfg.Feed.DetailBurst,
	})
	instrumented := feed.NewInstrumentedProvider(client, recorder, "ligadata")
	provider := feed.NewRetryingProvider(instrumented, logger, 0, 0)

	return newServerWithProvider(ctx, cfg, logger, provider, recorder, metricsSrv, metricsShutdown)
}

func newServerWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, provider feed.Provider, recorder *metrics.Recorder, metricsSrv *http.Server, metricsShutdown func(context.Context) error) *Server {
	agendas := store.NewAgendaStore()
	sessions := make(map[matches.Scope]*session.Session, len(cfg.Scopes))
	for _, raw := range cfg.Scopes {
		scope := matches.Scope(raw)
		sessions[scope] = session.New(ctx, session.Config{
			Scope:         scope,
			Provider:      provider,
			Agendas:       agendas,
			Logger:        logger,
			Metrics:       recorder,
			PollInterval:  cfg.PollInterval,
			TargetCap:     cfg.TargetCap,
			DisplayOffset: cfg.Feed.DisplayOffset,
		})
	}

	handler := handlers.NewHandler(sessions, logger)
	router := httpserver.NewRouter(handler, cfg.CORSOrigins)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return &Server{
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
		sessions: sessions,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      wrapped,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the metrics and API servers, kicks off the initial agenda loads,
// then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startHTTP(stop)

	for _, sess := range s.sessions {
		go s.loadLoop(ctx, sess)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
}

// loadLoop retries the initial agenda load until it succeeds; /ready stays
// unavailable for the scope in the meantime. Later refreshes go through the
// HTTP surface.
func (s *Server) loadLoop(ctx context.Context, sess *session.Session) {
	for {
		err := sess.Load(ctx)
		if err == nil {
			return
		}
		logging.Warn(s.logger, "initial agenda load failed",
			logging.FieldScope, string(sess.Scope()),
			"error", err,
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.cfg.LoadRetryInterval):
		}
	}
}

func (s *Server) startHTTP(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", "addr", s.httpServer.Addr)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error(s.logger, "http server failed", err)
			if stop != nil {
				stop()
			}
		}
	}()
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", "addr", s.metricsServer.Addr)
	go func() {
		if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(s.logger, "metrics server failed", "error", err)
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, sess := range s.sessions {
		sess.Close()
	}

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

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, *http.Server, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv *http.Server
	if handler != nil && recCfg.Enabled {
		metricsSrv = &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}
	}

	return rec, metricsSrv, shutdown
}
