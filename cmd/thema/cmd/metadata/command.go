// Package metadata provides the code list metadata command.
package metadata

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/thema/cmd/application"
	"github.com/agentstation/thema/internal/cmd/output"
	"github.com/agentstation/thema/internal/cmd/table"
)

// NewCommand creates the metadata command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Show code list metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			m := svc.Metadata()
			return output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), m,
				func(bool) table.Data { return table.MetadataToTableData(m) })
		},
	}
}
