package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/actd/pkg/config"
)

type Info struct {
	Config *config.Config
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintf(n.Out, "%s found on env, using %s\n", config.EnvConfigPath, override)
	} else {
		_, _ = fmt.Fprintf(n.Out, "%s env var not set\n", config.EnvConfigPath)
	}

	if n.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		n.Config = cfg
	}

	file := n.Config.File
	if file == "" {
		file = "none, using defaults"
	}
	_, _ = fmt.Fprintln(n.Out, "Config file:", file)
	_, _ = fmt.Fprintln(n.Out, "")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow("seed", strconv.FormatBool(n.Config.Seed))
	tbl.AddRow("log.level", n.Config.Log.Level)
	tbl.AddRow("log.json", strconv.FormatBool(n.Config.Log.JSON))
	tbl.AddRow("http.addr", n.Config.HTTP.Addr)
	tbl.AddRow("mcp.host", n.Config.MCP.Host)
	tbl.AddRow("mcp.port", strconv.Itoa(n.Config.MCP.Port))
	tbl.AddRow("mcp.path", n.Config.MCP.Path)
	_, _ = fmt.Fprintln(n.Out, tbl)
	return nil
}
