package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/grubdash/internal/config"
)

func TestNew(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.Error(t, err)

	s, err := New(config.DefaultConfig(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, s.Logger)
	assert.NotNil(t, s.Metrics)
}

func TestStart_RequiresSetup(t *testing.T) {
	s, err := New(config.DefaultConfig(), nil, nil)
	require.NoError(t, err)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestStartAndShutdown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Port = "0"

	s, err := New(cfg, nil, nil)
	require.NoError(t, err)
	s.SetupHTTPServer(http.NotFoundHandler())

	assert.Equal(t, 30*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 60*time.Second, s.httpServer.IdleTimeout)

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Give ListenAndServe a moment to bind.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
