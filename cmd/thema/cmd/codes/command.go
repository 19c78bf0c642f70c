// Package codes provides the code query commands.
package codes

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/thema/cmd/application"
	"github.com/agentstation/thema/internal/cmd/output"
	"github.com/agentstation/thema/internal/cmd/table"
	"github.com/agentstation/thema/pkg/query"
)

// NewCommand creates the codes command and its subcommands.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "codes",
		Aliases: []string{"code"},
		Short:   "Query the code list",
		Long: `Query the local Thema code list with the same operations the API serves.

Code values are matched case-insensitively.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newSearchCommand(app))
	cmd.AddCommand(newGetCommand(app))
	cmd.AddCommand(newChildrenCommand(app))

	return cmd
}

func newListCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List codes in source order",
		Example: `  thema codes list
  thema codes list --page 2 --limit 50 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			page, limit := pageFlags(cmd)
			return write(cmd, app, svc.ListCodes(page, limit))
		},
	}
	addPageFlags(cmd)
	return cmd
}

func newSearchCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [text...]",
		Short: "Search codes by text and/or parent",
		Long: `Search matches text against code values and descriptions
(case-insensitive). --parent restricts results to the direct children of a
code. At least one of the two is required.`,
		Example: `  thema codes search fiction
  thema codes search --parent YFB
  thema codes search fantasy --parent yfb`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			parent, _ := cmd.Flags().GetString("parent")
			page, limit := pageFlags(cmd)

			result, err := svc.SearchCodes(query.SearchParams{
				Query:  strings.Join(args, " "),
				Parent: parent,
				Page:   page,
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			return write(cmd, app, result)
		},
	}
	cmd.Flags().String("parent", "", "Parent code value")
	completeParent := completeCodes(app)
	_ = cmd.RegisterFlagCompletionFunc("parent", func(c *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeParent(c, nil, toComplete)
	})
	addPageFlags(cmd)
	return cmd
}

func newGetCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "get <code>",
		Short:   "Show one code",
		Example: `  thema codes get YFB1`,
		Args:    cobra.ExactArgs(1),

		ValidArgsFunction: completeCodes(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			entry, err := svc.GetCode(args[0])
			if err != nil {
				return err
			}
			return write(cmd, app, entry)
		},
	}
}

func newChildrenCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "children <code>",
		Short:   "List the direct children of a code",
		Example: `  thema codes children YFB`,
		Args:    cobra.ExactArgs(1),

		ValidArgsFunction: completeCodes(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			result, err := svc.GetChildren(args[0])
			if err != nil {
				return err
			}
			return write(cmd, app, result)
		},
	}
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", 100, "Codes per page")
}

func pageFlags(cmd *cobra.Command) (page, limit int) {
	page, _ = cmd.Flags().GetInt("page")
	limit, _ = cmd.Flags().GetInt("limit")
	return page, limit
}

// completeCodes completes a single code value argument by case-insensitive prefix.
func completeCodes(app application.Application) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		svc, err := app.Service()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		prefix := strings.ToUpper(toComplete)
		var values []string
		for _, c := range svc.Repository().All() {
			if strings.HasPrefix(strings.ToUpper(c.Value), prefix) {
				values = append(values, c.Value+"\t"+c.Description)
			}
		}
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// write renders a query result in the configured format.
func write(cmd *cobra.Command, app application.Application, v any) error {
	var toTable func(bool) table.Data
	switch r := v.(type) {
	case query.PagedResult:
		toTable = func(wide bool) table.Data { return table.PagedToTableData(r, wide) }
	case query.ChildrenResult:
		toTable = func(wide bool) table.Data { return table.ChildrenToTableData(r, wide) }
	case query.Entry:
		toTable = func(bool) table.Data { return table.EntryToTableData(r) }
	}
	return output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), v, toTable)
}
