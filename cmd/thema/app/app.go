// Package app provides the application context and dependency management
// for the thema CLI. It centralizes configuration, logging and the lazily
// loaded code list shared by every command.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/thema"
	"github.com/agentstation/thema/cmd/application"
	"github.com/agentstation/thema/internal/server"
	"github.com/agentstation/thema/pkg/errors"
	"github.com/agentstation/thema/pkg/query"
)

// App represents the thema application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Query service (lazy-initialized, singleton)
	mu      sync.RWMutex
	service *query.Service
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment and
// config files, which functional options may replace.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ServerConfig returns server defaults overlaid with configured values.
func (a *App) ServerConfig() server.Config {
	cfg := server.DefaultConfig()
	if a.config.Host != "" {
		cfg.Host = a.config.Host
	}
	if a.config.Port > 0 {
		cfg.Port = a.config.Port
	}
	return cfg
}

// Service returns the query service, loading the code list on first use.
// This is thread-safe and ensures the data file is read once.
func (a *App) Service() (*query.Service, error) {
	a.mu.RLock()
	if a.service != nil {
		svc := a.service
		a.mu.RUnlock()
		return svc, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.service != nil {
		return a.service, nil
	}

	svc, err := thema.Open(thema.WithDataFile(a.config.DataFile), thema.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	a.service = svc
	return a.service, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithService sets a preloaded query service (useful for testing).
func WithService(svc *query.Service) Option {
	return func(a *App) error {
		a.service = svc
		return nil
	}
}
