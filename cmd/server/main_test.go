package main

import (
	"context"
	"net"
	"testing"
	"time"

	"codeberg.org/devops-project/server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolates run from the host environment
func setRunEnv(t *testing.T, port string) {
	t.Helper()

	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "TRUSTED_PROXIES",
		"RATE_LIMIT", "TRACING_EXPORTER", "OTEL_EXPORTER_OTLP_ENDPOINT", "DOCS_ENABLED",
	} {
		t.Setenv(key, "")
	}

	t.Setenv("ADDR", "127.0.0.1")
	t.Setenv("PORT", port)
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	setRunEnv(t, "0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- run(ctx, config.Flags{})
	}()

	// give the listener a moment to come up
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRun_ReturnsServeError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close() //nolint:errcheck // test cleanup

	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	setRunEnv(t, port)

	done := make(chan error, 1)
	go func() {
		done <- run(context.Background(), config.Flags{})
	}()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "address already in use")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not report the bind failure")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	setRunEnv(t, "0")
	t.Setenv("TRACING_EXPORTER", "zipkin")

	err := run(context.Background(), config.Flags{})

	assert.ErrorContains(t, err, "TRACING_EXPORTER")
}

func TestRun_InvalidFlag(t *testing.T) {
	setRunEnv(t, "0")

	err := run(context.Background(), config.Flags{Port: "http"})

	assert.ErrorContains(t, err, "PORT must be")
}
