// Package version provides the version command.
package version

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/thema/cmd/application"
)

// NewCommand creates the version command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("thema %s\n", app.Version())
			if full, _ := cmd.Flags().GetBool("full"); full {
				cmd.Printf("  commit:   %s\n", app.Commit())
				cmd.Printf("  built:    %s\n", app.Date())
				cmd.Printf("  built by: %s\n", app.BuiltBy())
				cmd.Printf("  go:       %s\n", runtime.Version())
			}
		},
	}
	cmd.Flags().Bool("full", false, "Include build details")
	return cmd
}
