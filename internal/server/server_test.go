package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/handler"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()
	handlers, err := handler.NewHandlers(service.NewServices(logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "localhost:1"}, logger.Nop())
	assert.Equal(t, config.DefaultRequestTimeout, h.server.ReadTimeout)
	assert.Equal(t, config.DefaultRequestTimeout, h.server.WriteTimeout)

	h = newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "localhost:1", RequestTimeout: time.Second}, logger.Nop())
	assert.Equal(t, time.Second, h.server.ReadHeaderTimeout)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	s := newTestServer(t, config.Server{HTTPAddress: addr})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := newTestServer(t, config.Server{HTTPAddress: ln.Addr().String()})
	assert.Error(t, s.run(context.Background()))
}
