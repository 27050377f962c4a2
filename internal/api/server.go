// Package api serves the quiz over HTTP: a JSON API for questions, types,
// sessions and stateless classification, plus the embedded widget.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/config"
	"github.com/abhisek/keizoku/internal/metrics"
	"github.com/abhisek/keizoku/internal/session"
)

const (
	sessionCookie   = "keizoku_session"
	shutdownTimeout = 10 * time.Second
)

// Options carries the optional collaborators of a Server.
type Options struct {
	Logger *zap.Logger

	// Metrics receives HTTP and session observations. Nil disables them.
	Metrics *metrics.Metrics

	// Gatherer backs /metrics. Defaults to the global Prometheus registry.
	Gatherer prometheus.Gatherer

	// Widget serves everything outside /api. Nil leaves those paths 404.
	Widget http.Handler
}

// Server is the HTTP host for quiz sessions.
type Server struct {
	cfg        *config.Config
	classifier session.Classifier
	sessions   *sessionStore
	logger     *zap.Logger
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	widget     http.Handler
}

// NewServer creates a Server. cfg must have passed Validate.
func NewServer(cfg *config.Config, classifier session.Classifier, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	return &Server{
		cfg:        cfg,
		classifier: classifier,
		sessions:   newSessionStore(cfg.MaxSessions, cfg.SessionTTL, opts.Metrics),
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		gatherer:   opts.Gatherer,
		widget:     opts.Widget,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(cors(s.cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleQuestions)
		r.Get("/types", s.handleTypes)
		r.Get("/types/{name}", s.handleType)
		r.Post("/classify", s.handleClassify)

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/answers", s.handleAnswer)
			r.Post("/reset", s.handleReset)
		})
	})

	if s.cfg.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.widget != nil {
		r.Handle("/*", s.widget)
	}

	return r
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// Classification can take as long as the LLM timeout.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
