package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const shutdownTimeout = 5 * time.Second

// HTTPOptions configures the HTTP listener.
type HTTPOptions struct {
	// BindAddress is the host:port to listen on.
	BindAddress string
	// BaseURL is the externally visible URL clients use to reach the
	// message endpoint announced over SSE.
	BaseURL string
	// MetricsPath serves MetricsHandler when both are set.
	MetricsPath    string
	MetricsHandler http.Handler
}

// Router returns the HTTP handler hosting the SSE transport, /health and
// optionally the metrics endpoint.
func (s *Server) Router(sse *mcpsrv.SSEServer, opts HTTPOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)

	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler)
	}

	r.Handle(sse.CompleteSsePath(), sse)
	r.Handle(sse.CompleteMessagePath(), sse)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// NewSSEServer wraps the MCP server in the SSE transport.
func (s *Server) NewSSEServer(baseURL string) *mcpsrv.SSEServer {
	return mcpsrv.NewSSEServer(s.mcp,
		mcpsrv.WithBaseURL(baseURL),
		mcpsrv.WithKeepAlive(true),
	)
}

// Serve listens on opts.BindAddress until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context, opts HTTPOptions) error {
	ln, err := net.Listen("tcp", opts.BindAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", opts.BindAddress, err)
	}
	return s.ServeListener(ctx, ln, opts)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener, opts HTTPOptions) error {
	sse := s.NewSSEServer(opts.BaseURL)
	httpSrv := &http.Server{
		Handler:           s.Router(sse, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Starting server", "addr", ln.Addr().String(), "base_url", opts.BaseURL)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := sse.Shutdown(shutdownCtx); err != nil {
			log.Warn("Failed to close SSE sessions", "error", err)
		}
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown error: %w", err)
		}

		log.Info("Server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
