package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/commands/options"
	"tableflip.dev/actd/pkg/config"
	"tableflip.dev/actd/pkg/logging"
	"tableflip.dev/actd/pkg/seed"
)

// environment is resolved once per invocation, before any command runs.
type environment struct {
	flags options.RootOptions

	cfg *config.Config
	log zerolog.Logger
}

func (e *environment) addFlags(cmd *cobra.Command) {
	options.AddRootArgs(cmd, &e.flags)
}

func (e *environment) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = e.flags.LogLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = e.flags.LogJSON
	}
	if flags.Changed("seed") {
		cfg.Seed = e.flags.Seed
	}

	e.cfg = cfg
	e.log = logging.New(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if cfg.File != "" {
		e.log.Debug().Str("file", cfg.File).Msg("loaded config")
	}
	return nil
}

// app builds a fresh, process-local service.
func (e *environment) app() *app.Service {
	data := seed.Empty()
	if e.cfg == nil || e.cfg.Seed {
		data = seed.Sample()
	}
	return app.New(app.WithSeed(data), app.WithLogger(e.log))
}
