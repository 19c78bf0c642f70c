// Package main provides the entry point for the thema CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/thema/cmd/thema/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Logger().Debug().Err(err).Msg("Command failed")
		app.ExitOnError(err)
	}
}
