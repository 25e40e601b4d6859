package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/actd/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the resolved configuration.",
		Example: `
actd info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := info.Info{
				Config: env.cfg,
				Out:    cmd.OutOrStdout(),
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
