package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/actd/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
actd ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return teaui.Run(cmd.Context(), env.app())
		},
	}

	topLevel.AddCommand(cmd)
}
