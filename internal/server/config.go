package server

import (
	"time"

	"github.com/agentstation/thema/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string // empty allows any origin

	// Performance settings
	RateLimit   int // Requests per minute per IP (0 to disable)
	GzipEnabled bool

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Features
	MetricsEnabled bool
	UIEnabled      bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:           constants.DefaultHost,
		Port:           constants.DefaultPort,
		PathPrefix:     constants.DefaultPathPrefix,
		CORSEnabled:    true,
		CORSOrigins:    []string{},
		RateLimit:      constants.DefaultRateLimit,
		GzipEnabled:    true,
		ReadTimeout:    constants.DefaultReadTimeout,
		WriteTimeout:   constants.DefaultWriteTimeout,
		IdleTimeout:    constants.DefaultIdleTimeout,
		MetricsEnabled: true,
		UIEnabled:      true,
	}
}
