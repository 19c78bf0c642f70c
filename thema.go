package thema

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/thema/pkg/codes"
	"github.com/agentstation/thema/pkg/constants"
	"github.com/agentstation/thema/pkg/query"
)

// config holds the options applied by Open.
type config struct {
	dataFile   string
	candidates []string
	dirs       []string
	logger     *zerolog.Logger
}

// Option configures Open.
type Option func(*config)

// WithDataFile sets an explicit source document path, which must exist.
func WithDataFile(path string) Option {
	return func(c *config) {
		c.dataFile = path
	}
}

// WithSearchDirs sets the directories searched for the default data file
// names when no explicit path is given.
func WithSearchDirs(dirs ...string) Option {
	return func(c *config) {
		c.dirs = dirs
	}
}

// WithLogger sets the logger used while loading.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Open locates and loads the code list and returns a query service over it.
//
// Without WithDataFile, the default file names are tried in the working
// directory and then next to the running executable.
func Open(opts ...Option) (*query.Service, error) {
	c := &config{candidates: constants.DataFileCandidates}
	for _, opt := range opts {
		opt(c)
	}
	if c.dirs == nil {
		c.dirs = codes.SearchDirs()
	}

	path, err := codes.Locate(c.dataFile, c.candidates, c.dirs...)
	if err != nil {
		return nil, err
	}

	var loadOpts []codes.Option
	if c.logger != nil {
		loadOpts = append(loadOpts, codes.WithLogger(c.logger))
	}
	repo, err := codes.Load(path, loadOpts...)
	if err != nil {
		return nil, err
	}
	return query.New(repo), nil
}
