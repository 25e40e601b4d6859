// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// RootOptions are persistent flags that override configuration.
type RootOptions struct {
	LogLevel string
	LogJSON  bool
	Seed     bool
}

// AddRootArgs wires the persistent flags on the top level command.
func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"Log level: debug, info, warn or error.")
	cmd.PersistentFlags().BoolVar(&o.LogJSON, "log-json", false,
		"Log as JSON instead of console text.")
	cmd.PersistentFlags().BoolVar(&o.Seed, "seed", true,
		"Start with the sample journal.")
}
