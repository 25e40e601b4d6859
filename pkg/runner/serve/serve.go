// Package serve runs the actd JSON API over HTTP.
package serve

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/actd/pkg/app"
)

// Serve runs the HTTP API until its context is cancelled.
type Serve struct {
	App         *app.Service
	Addr        string
	Log         zerolog.Logger
	OnListening func(net.Addr)
}

// Do executes the runner.
func (s *Serve) Do(ctx context.Context) error {
	if s.App == nil {
		return errors.New("serve requires the app service")
	}
	addr := s.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	router := NewHandler(s.App).Router()
	router.Use(s.logRequests)

	httpSrv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.Log.Info().Str("addr", ln.Addr().String()).Msg("serving api")
	if s.OnListening != nil {
		s.OnListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		s.Log.Info().Msg("api stopped")
		return nil
	}
	return err
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Serve) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.Log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
