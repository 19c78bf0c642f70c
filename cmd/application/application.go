// Package application provides the application interface for thema commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            svc, err := app.Service()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use svc
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ServiceFunc: func() (*query.Service, error) {
//	        return query.New(testRepo), nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/thema/internal/server"
	"github.com/agentstation/thema/pkg/query"
)

// Application provides the application interface that commands need.
// The App struct from cmd/thema/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Service returns the query service over the loaded code list. The data
	// file is located and loaded on first use.
	Service() (*query.Service, error)

	// ServerConfig returns server settings from config files and the
	// environment, before command flags are applied.
	ServerConfig() server.Config

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
