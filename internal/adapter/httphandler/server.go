package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultHandleTimeout     = 5 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultIdleTimeout       = 2 * time.Second
)

// ServerConfig carries the listen address and server timeouts. Zero
// timeouts fall back to the defaults.
type ServerConfig struct {
	Addr              string
	HandleTimeout     time.Duration
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
}

func (c *ServerConfig) normalize() {
	if c.HandleTimeout == 0 {
		c.HandleTimeout = defaultHandleTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaultIdleTimeout
	}
}

type HTTPServer struct {
	httpServer *http.Server
}

// NewHTTPServer wraps the storefront routes in a handle-timeout so a
// stuck catalog or broker call cannot pin a buyer's request forever.
func NewHTTPServer(cfg ServerConfig, handler http.Handler) HTTPServer {
	cfg.normalize()
	handler = http.TimeoutHandler(
		handler, cfg.HandleTimeout, "storefront is busy, retry shortly",
	)
	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	return HTTPServer{s}
}

func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op)

	defer stopFn()
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server stopped unexpectedly", "err", err)
	}
}

func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("shutting down http server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error("failed to shut down gracefully", "err", err)
	}
	log.Info("http server is down")
}
