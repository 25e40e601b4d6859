package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/actd/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the life areas values are grouped by",
		Example: `
actd categories
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := categories.Categories{JSON: output.JSON, Out: cmd.OutOrStdout()}
			err := c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
