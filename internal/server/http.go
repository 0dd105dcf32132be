package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address. It is separate from serve so the
// bound address is known before requests are accepted.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServer.listen").Str("address", h.server.Addr).Msg("error binding address")
		return fmt.Errorf("error listening on %s: %w", h.server.Addr, err)
	}

	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()

	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server is listening")
	return nil
}

// addr returns the bound address, or nil before listen succeeded.
func (h *httpServer) addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

func (h *httpServer) serve() error {
	h.mu.Lock()
	ln := h.listener
	h.mu.Unlock()

	if ln == nil {
		return errServerNotStarted
	}

	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.serve").Msg("HTTP server stopped unexpectedly")
		return fmt.Errorf("error serving HTTP: %w", err)
	}

	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.shutdown").Msg("error shutting down HTTP server")
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}

	return nil
}
