package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/handler"
	myHTTP "github.com/MKhiriev/bloglist/internal/handler/http"
	"github.com/MKhiriev/bloglist/internal/logger"
)

func TestNewServer(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}

	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  bool
	}{
		{name: "http server", handlers: handlers, cfg: config.Server{HTTPAddress: "127.0.0.1:0"}},
		{name: "no handlers", cfg: config.Server{HTTPAddress: "127.0.0.1:0"}, wantErr: true},
		{name: "no address", handlers: handlers, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			if tt.wantErr {
				require.ErrorIs(t, err, errNoServersAreCreated)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
		})
	}
}

func TestHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":3003", RequestTimeout: 7 * time.Second}

	h := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, ":3003", h.server.Addr)
	assert.Equal(t, 7*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 7*time.Second, h.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
}

func TestHTTPServer_ServeBeforeListen(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.ErrorIs(t, h.serve(), errServerNotStarted)
	assert.Nil(t, h.addr())
}

func TestServer_RunAndShutdownOnCancel(t *testing.T) {
	hs := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	srv := &server{httpServer: hs, shutdownTimeout: time.Second, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool { return hs.addr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/", hs.addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	hs := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	srv := &server{httpServer: hs, shutdownTimeout: time.Second, logger: logger.Nop()}

	err = srv.RunServer(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listening")
}
