package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/actd/pkg/commands/options"
	"tableflip.dev/actd/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes mood, values and actions as resources
and tools through the Model Context Protocol.`,
		Example: `
actd mcp
actd mcp --transport stdio
actd mcp --http-port 0 --http-path /actd
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := mcpRunner(cmd, mo)
			if err != nil {
				return err
			}
			return runner.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

// mcpRunner merges the flags over the mcp section of the config.
func mcpRunner(cmd *cobra.Command, mo *options.MCPOptions) (*mcp.Runner, error) {
	flags := cmd.Flags()
	cfg := env.cfg.MCP

	host, port, path := cfg.Host, cfg.Port, cfg.Path
	if h := strings.TrimSpace(mo.Host); h != "" {
		host = h
	}
	if flags.Changed("http-port") {
		port = mo.Port
	}
	if p := strings.TrimSpace(mo.Path); p != "" {
		path = p
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid http-port %d", port)
	}

	runner := &mcp.Runner{
		App:              env.app(),
		Name:             "actd",
		Version:          version,
		Log:              env.log,
		HTTPListenAddr:   net.JoinHostPort(host, strconv.Itoa(port)),
		HTTPEndpointPath: path,
		HTTPServerCert:   strings.TrimSpace(mo.TLSCert),
		HTTPServerKey:    strings.TrimSpace(mo.TLSKey),
	}

	switch t := mcp.Transport(strings.ToLower(strings.TrimSpace(mo.Transport))); t {
	case "", mcp.TransportHTTP:
		useTLS, err := runner.TLS()
		if err != nil {
			return nil, err
		}
		runner.Transport = mcp.TransportHTTP
		runner.OnHTTPListening = func(a net.Addr) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n",
				mcp.ListenURL(a, host, path, useTLS))
		}
	case mcp.TransportStdio:
		runner.Transport = mcp.TransportStdio
	default:
		return nil, fmt.Errorf("unsupported transport %q (expected http or stdio)", mo.Transport)
	}
	return runner, nil
}
