package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const (
	loggerKey contextKey = iota
	requestIDKey
)

// WithLogger stores logger in ctx. A nil logger stores the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithRequestID records the request ID and adds it to the context logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCode adds the requested code value to the context logger.
func WithCode(ctx context.Context, codeValue string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("code_value", codeValue)
	})
}

// WithSearch adds search inputs to the context logger. Empty inputs are
// omitted.
func WithSearch(ctx context.Context, query, parent string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		if query != "" {
			c = c.Str("search_query", query)
		}
		if parent != "" {
			c = c.Str("search_parent", parent)
		}
		return c
	})
}

func with(ctx context.Context, fn func(zerolog.Context) zerolog.Context) context.Context {
	logger := fn(FromContext(ctx).With()).Logger()
	return context.WithValue(ctx, loggerKey, &logger)
}
