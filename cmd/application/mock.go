package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/thema/internal/server"
	"github.com/agentstation/thema/pkg/errors"
	"github.com/agentstation/thema/pkg/query"
)

// Mock is an Application whose behavior is set per test. Unset functions
// fall back to a data error, a nop logger or the default server config.
type Mock struct {
	ServiceFunc      func() (*query.Service, error)
	ServerConfigFunc func() server.Config
	LoggerFunc       func() *zerolog.Logger
	Format           string
	VersionString    string
}

var _ Application = (*Mock)(nil)

// Service implements Application.
func (m *Mock) Service() (*query.Service, error) {
	if m.ServiceFunc == nil {
		return nil, errors.NewDataError("", "no code list configured", nil)
	}
	return m.ServiceFunc()
}

// ServerConfig implements Application.
func (m *Mock) ServerConfig() server.Config {
	if m.ServerConfigFunc == nil {
		return server.DefaultConfig()
	}
	return m.ServerConfigFunc()
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc == nil {
		logger := zerolog.Nop()
		return &logger
	}
	return m.LoggerFunc()
}

// OutputFormat implements Application.
func (m *Mock) OutputFormat() string { return m.Format }

// Version implements Application.
func (m *Mock) Version() string { return m.VersionString }

// Commit implements Application.
func (m *Mock) Commit() string { return "" }

// Date implements Application.
func (m *Mock) Date() string { return "" }

// BuiltBy implements Application.
func (m *Mock) BuiltBy() string { return "" }
