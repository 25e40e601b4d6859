package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
	env    = &environment{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "actd",
		Short: base.Wrap80("Daily check-ins with your mood, your values and the actions that serve them."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	env.addFlags(cmd)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addCategories(topLevel)
	addCheckin(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
