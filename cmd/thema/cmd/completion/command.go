// Package completion provides the shell completion command.
package completion

import (
	"fmt"

	"github.com/spf13/cobra"
)

// shells maps each supported shell to its script generator and load hint.
var shells = []struct {
	name string
	hint string
	gen  func(root *cobra.Command, cmd *cobra.Command) error
}{
	{
		name: "bash",
		hint: "source <(thema completion bash)",
		gen: func(root, cmd *cobra.Command) error {
			return root.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	},
	{
		name: "zsh",
		hint: `thema completion zsh > "${fpath[1]}/_thema"`,
		gen: func(root, cmd *cobra.Command) error {
			return root.GenZshCompletion(cmd.OutOrStdout())
		},
	},
	{
		name: "fish",
		hint: "thema completion fish | source",
		gen: func(root, cmd *cobra.Command) error {
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	},
	{
		name: "powershell",
		hint: "thema completion powershell | Out-String | Invoke-Expression",
		gen: func(root, cmd *cobra.Command) error {
			return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	},
}

// NewCommand creates the completion command. It replaces cobra's default so
// the generated scripts complete code values from the loaded code list.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate the autocompletion script for thema.

Code arguments (codes get, codes children, --parent) complete from the
configured code list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, shell := range shells {
		gen := shell.gen
		cmd.AddCommand(&cobra.Command{
			Use:   shell.name,
			Short: fmt.Sprintf("Generate %s completion script", shell.name),
			Long: fmt.Sprintf(`Generate the autocompletion script for %s.

To load completions in your current shell session:

  %s`, shell.name, shell.hint),
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return gen(cmd.Root(), cmd)
			},
		})
	}

	return cmd
}
