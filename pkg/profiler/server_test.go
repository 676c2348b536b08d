package profiler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *Server {
	t.Helper()
	server := New(0)
	require.NoError(t, server.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})
	return server
}

func TestServer_Addr(t *testing.T) {
	assert.Empty(t, New(0).Addr(), "unstarted")
	assert.NoError(t, New(0).Shutdown(context.Background()), "shutdown before start")

	server := startServer(t)
	assert.Regexp(t, `^127\.0\.0\.1:\d+$`, server.Addr())
}

func TestServer_Endpoints(t *testing.T) {
	server := startServer(t)
	base := "http://" + server.Addr()

	for _, endpoint := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/symbol", "/debug/pprof/heap"} {
		t.Run(endpoint, func(t *testing.T) {
			resp, err := http.Get(base + endpoint)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestServer_PortInUse(t *testing.T) {
	server := startServer(t)

	var port int
	_, err := fmt.Sscanf(server.Addr(), "127.0.0.1:%d", &port)
	require.NoError(t, err)

	assert.ErrorContains(t, New(port).Start(context.Background()), "listen")
}
