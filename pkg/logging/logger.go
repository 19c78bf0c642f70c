// Package logging provides structured logging for thema using zerolog.
// Terminals get human-readable console output; pipes, files and containers
// get JSON.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("path", "data/data.json").Int("codes", 9000).Msg("Loaded code list")
//
//	// Carry a request-scoped logger through a handler
//	ctx := logging.WithCode(r.Context(), "YFB")
//	logging.FromContext(ctx).Debug().Msg("Resolving children")
package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	logger := NewLoggerFromConfig(ConfigFromEnv())
	defaultLogger.Store(&logger)
}

// Default returns the process-wide logger configured from LOG_* variables.
// Library code falls back to it when no logger is injected.
func Default() *zerolog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
}
