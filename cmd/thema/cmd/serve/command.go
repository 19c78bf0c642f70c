// Package serve provides the HTTP API server command.
package serve

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/thema/cmd/application"
	"github.com/agentstation/thema/internal/server"
	"github.com/agentstation/thema/pkg/constants"
	"github.com/agentstation/thema/pkg/errors"
)

// NewCommand creates the serve command.
func NewCommand(app application.Application) *cobra.Command {
	defaults := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Thema REST API and browser UI",
		Long: `Start the read-only HTTP API over the Thema code list.

Features:
  - JSON endpoints for metadata, listing, search, lookup and children
  - Embedded browser UI with client-side route fallback
  - Rate limiting (requests per minute per IP)
  - CORS support for web applications
  - Gzip compression, security headers and request IDs
  - Prometheus metrics at /metrics
  - Graceful shutdown with connection draining

The data file is loaded before the server starts listening; a missing or
unreadable file stops the command with an error.`,
		Example: `  # Start on the default port 3000
  thema serve

  # Start on a custom port with an explicit data file
  thema serve --port 8080 --data ./data/data.json

  # Restrict CORS to specific origins
  thema serve --cors-origins "https://example.com,https://app.example.com"

  # Disable rate limiting and metrics
  thema serve --rate-limit 0 --metrics=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}

	// Server configuration flags
	cmd.Flags().IntP("port", "p", defaults.Port, "Server port (env PORT or HTTP_PORT)")
	cmd.Flags().String("host", defaults.Host, "Bind address (env HTTP_HOST)")
	cmd.Flags().String("prefix", defaults.PathPrefix, "API path prefix")

	// CORS flags
	cmd.Flags().Bool("cors", defaults.CORSEnabled, "Enable CORS")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated, default any)")

	// Performance flags
	cmd.Flags().Int("rate-limit", defaults.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Bool("gzip", defaults.GzipEnabled, "Compress responses")

	// Timeout flags
	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")

	// Features flags
	cmd.Flags().Bool("metrics", defaults.MetricsEnabled, "Enable the /metrics endpoint")
	cmd.Flags().Bool("ui", defaults.UIEnabled, "Serve the browser UI")

	return cmd
}

// run starts the API server and blocks until the command context ends.
func run(cmd *cobra.Command, app application.Application) error {
	cfg, err := configFromFlags(cmd, app.ServerConfig())
	if err != nil {
		return err
	}

	// Load the code list before listening
	svc, err := app.Service()
	if err != nil {
		return err
	}

	logger := app.Logger()
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Int("codes", svc.Repository().Len()).
		Msg("Starting API server")

	srv, err := server.New(svc, logger, cfg)
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	cmd.Printf("Serving %d codes on http://%s%s\n", svc.Repository().Len(), srv.Addr(), cfg.PathPrefix)
	cmd.Println("Press Ctrl+C to stop")

	return srv.ListenAndServe(cmd.Context())
}

// configFromFlags applies explicitly set flags over base. Host and port keep
// their configured values unless the flag was given.
func configFromFlags(cmd *cobra.Command, base server.Config) (server.Config, error) {
	cfg := base
	flags := cmd.Flags()

	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, errors.NewConfigError("serve", fmt.Sprintf("port out of range: %d", cfg.Port), nil)
	}

	cfg.PathPrefix, _ = flags.GetString("prefix")
	cfg.CORSEnabled, _ = flags.GetBool("cors")
	cfg.CORSOrigins, _ = flags.GetStringSlice("cors-origins")
	cfg.RateLimit, _ = flags.GetInt("rate-limit")
	cfg.GzipEnabled, _ = flags.GetBool("gzip")
	cfg.ReadTimeout = durationFlag(cmd, "read-timeout", constants.DefaultReadTimeout)
	cfg.WriteTimeout = durationFlag(cmd, "write-timeout", constants.DefaultWriteTimeout)
	cfg.IdleTimeout = durationFlag(cmd, "idle-timeout", constants.DefaultIdleTimeout)
	cfg.MetricsEnabled, _ = flags.GetBool("metrics")
	cfg.UIEnabled, _ = flags.GetBool("ui")

	return cfg, nil
}

// durationFlag returns a positive duration flag value or fallback.
func durationFlag(cmd *cobra.Command, name string, fallback time.Duration) time.Duration {
	d, err := cmd.Flags().GetDuration(name)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
