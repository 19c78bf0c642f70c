package codes

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/thema/pkg/logging"
)

// options holds configuration shared by NewRepository and Load.
type options struct {
	logger   *zerolog.Logger
	metadata Metadata
}

// Option configures repository construction.
type Option func(*options)

// WithLogger sets the logger used to report load progress and value collisions.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetadata sets the collection metadata.
func WithMetadata(m Metadata) Option {
	return func(o *options) {
		o.metadata = m
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logging.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
