package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/actd/pkg/commands/options"
	"tableflip.dev/actd/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show [mood|values|actions]",
		Short: "print the journal",
		Long: base.Wrap80(strings.Join([]string{
			"Print mood entries as a chart, values grouped by category with their scores,",
			"and committed actions with the value each one serves.",
			"Without an argument all three are printed.",
		}, " ")),
		Example: `
actd show
actd show values --category leisure
actd show actions --json
`,
		ValidArgs: []string{string(show.Mood), string(show.Values), string(show.Actions)},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			what := show.All
			if len(args) == 1 {
				var err error
				if what, err = show.ParseWhat(args[0]); err != nil {
					return output.HandleError(err)
				}
			}
			s := show.Show{
				App:      env.app(),
				What:     what,
				Category: co.Category,
				ShowID:   io.ShowID,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
