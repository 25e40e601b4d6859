package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/actd/pkg/runner/checkin"
)

func addCheckin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "log today's mood and rate a value, one prompt at a time",
		Long: `Walk through a daily check-in: pick a mood, optionally rate one of your
values and commit to an action for it. The session is not saved once the
command exits.`,
		Example: `
actd checkin
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := checkin.Checkin{
				App:    env.app(),
				Prompt: checkin.Terminal{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
				Out:    cmd.OutOrStdout(),
			}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
