package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"tableflip.dev/actd/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	App     *app.Service
	Name    string
	Version string
	Log     zerolog.Logger

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// NewServer builds the MCP server with every actd tool and resource
// registered.
func NewServer(name, version string, a *app.Service) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Log mood, rate personal values and track committed actions via MCP."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(a)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires the app service")
	}
	name := r.Name
	if name == "" {
		name = "actd"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := NewServer(name, version, r.App)

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		r.Log.Info().Msg("serving MCP over stdio")
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

// DefaultHTTPAddr is used when no listen address is configured.
const DefaultHTTPAddr = "127.0.0.1:8081"

// TLS reports whether both halves of the certificate pair are set. A lone
// cert or key is an error.
func (r Runner) TLS() (bool, error) {
	switch {
	case r.HTTPServerCert == "" && r.HTTPServerKey == "":
		return false, nil
	case r.HTTPServerCert == "" || r.HTTPServerKey == "":
		return false, errors.New("both http tls cert and key must be provided")
	}
	return true, nil
}

func (r Runner) endpoint() string {
	path := strings.TrimSpace(r.HTTPEndpointPath)
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	useTLS, err := r.TLS()
	if err != nil {
		return err
	}

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = DefaultHTTPAddr
	}
	path := r.endpoint()

	router := mux.NewRouter()
	router.Handle(path, server.NewStreamableHTTPServer(srv))
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	httpSrv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", listenAddr, err)
	}
	r.Log.Info().
		Str("addr", ln.Addr().String()).
		Str("path", path).
		Bool("tls", useTLS).
		Msg("serving MCP over http")
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() {
		if useTLS {
			errCh <- httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
			return
		}
		errCh <- httpSrv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	r.Log.Info().Msg("MCP server stopped")
	return nil
}

// ListenURL formats the address a client should dial. Wildcard hosts are
// replaced with the bound IP, or loopback when that is unspecified too.
func ListenURL(a net.Addr, host, path string, useTLS bool) string {
	scheme := "http"
	if useTLS {
		scheme = "https"
	}

	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, a, path)
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(strings.Trim(host, "[]"), strconv.Itoa(tcp.Port)), path)
}
