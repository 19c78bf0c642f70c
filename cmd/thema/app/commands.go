package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/thema/cmd/thema/cmd/codes"
	"github.com/agentstation/thema/cmd/thema/cmd/completion"
	"github.com/agentstation/thema/cmd/thema/cmd/metadata"
	"github.com/agentstation/thema/cmd/thema/cmd/serve"
	"github.com/agentstation/thema/cmd/thema/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	for _, cmd := range []*cobra.Command{
		serve.NewCommand(a),
		codes.NewCommand(a),
		metadata.NewCommand(a),
	} {
		cmd.GroupID = "core"
		rootCmd.AddCommand(cmd)
	}

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
}
