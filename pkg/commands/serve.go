package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"tableflip.dev/actd/pkg/commands/options"
	"tableflip.dev/actd/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the journal as a JSON API",
		Long: `Serve mood, values and actions over HTTP under /api/v1. State lives in
memory for as long as the server runs.`,
		Example: `
actd serve --addr 127.0.0.1:8080
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := so.Addr
			if addr == "" {
				addr = env.cfg.HTTP.Addr
			}
			s := serve.Serve{
				App:  env.app(),
				Addr: addr,
				Log:  env.log,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API listening on http://%s/api/v1\n", a)
				},
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddServeArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
