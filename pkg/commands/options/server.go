package options

import (
	"github.com/spf13/cobra"
)

// ServeOptions configures the JSON API listener.
type ServeOptions struct {
	Addr string
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Addr, "addr", "",
		"Listen address, defaults to http.addr from config.")
}

// MCPOptions configures the MCP server transport.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "http", "transport to use: http or stdio")
	cmd.Flags().StringVar(&o.Host, "http-host", "", "host/interface for HTTP transport, defaults to mcp.host")
	cmd.Flags().IntVar(&o.Port, "http-port", 0, "port for HTTP transport, defaults to mcp.port (use 0 for random)")
	cmd.Flags().StringVar(&o.Path, "http-path", "", "HTTP endpoint path, defaults to mcp.path")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "", "TLS private key file for HTTPS")
}
