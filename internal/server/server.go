package server

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/thema/internal/embedded"
	"github.com/agentstation/thema/internal/server/metrics"
	"github.com/agentstation/thema/internal/server/middleware"
	"github.com/agentstation/thema/pkg/constants"
	"github.com/agentstation/thema/pkg/errors"
	"github.com/agentstation/thema/pkg/logging"
	"github.com/agentstation/thema/pkg/query"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	svc       *query.Service
	logger    *zerolog.Logger
	config    Config
	metrics   *metrics.Metrics        // nil when metrics are disabled
	limiter   *middleware.RateLimiter // nil when rate limiting is disabled
	ui        fs.FS                   // nil when the UI is disabled
	handler   http.Handler
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(svc *query.Service, logger *zerolog.Logger, cfg Config) (*Server, error) {
	if svc == nil || svc.Repository() == nil {
		return nil, errors.NewValidationError("service", nil, "a loaded code list is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	cfg.PathPrefix = normalizePrefix(cfg.PathPrefix)

	s := &Server{
		svc:       svc,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	if cfg.MetricsEnabled {
		s.metrics = metrics.New()
		s.metrics.SetCodesLoaded(svc.Repository().Len())
	}
	if cfg.RateLimit > 0 {
		opts := []middleware.RateLimiterOption{}
		if s.metrics != nil {
			opts = append(opts, middleware.WithLimitHook(s.metrics.RateLimited.Inc))
		}
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, logger, opts...)
	}
	if cfg.UIEnabled {
		s.ui = embedded.Web()
	}

	handler, err := s.setupRouter()
	if err != nil {
		return nil, fmt.Errorf("building router: %w", err)
	}
	s.handler = handler

	logger.Debug().
		Str("prefix", cfg.PathPrefix).
		Int("codes", svc.Repository().Len()).
		Bool("metrics", cfg.MetricsEnabled).
		Int("rate_limit", cfg.RateLimit).
		Msg("Server instance created")
	return s, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Metrics returns the server's metrics, or nil when disabled.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}

// ListenAndServe serves HTTP until ctx is cancelled, then drains open
// connections for up to constants.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", ln.Addr().String()).
			Str("prefix", s.config.PathPrefix).
			Msg("Server starting")

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		s.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

// normalizePrefix makes prefix start with a slash and end without one.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return constants.DefaultPathPrefix
	}
	return "/" + prefix
}
