package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"ENVIRONMENT",
	"ADDR",
	"PORT",
	"LOG_LEVEL",
	"CORS_ALLOWED_ORIGINS",
	"TRUSTED_PROXIES",
	"RATE_LIMIT",
	"TRACING_EXPORTER",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
	"DOCS_ENABLED",
	"SHUTDOWN_TIMEOUT",
}

// blanks every variable the loader reads so the host environment can't leak in
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":8080", cfg.ListenAddress())
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Empty(t, cfg.RateLimit)
	assert.Equal(t, TracingNone, cfg.TracingExporter)
	assert.True(t, cfg.DocsEnabled)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ADDR", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT", " 50-M ")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1")
	t.Setenv("TRACING_EXPORTER", "otlp")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddress())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "50-M", cfg.RateLimit)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.TrustedProxies)
	assert.Equal(t, TracingOTLP, cfg.TracingExporter)
	assert.Equal(t, "collector:4317", cfg.OTLPEndpoint)
	assert.False(t, cfg.DocsEnabled, "docs default off in production")
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadEnvironmentVariables_DocsExplicit(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DOCS_ENABLED", "true")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.True(t, cfg.DocsEnabled)
}

func TestLoadEnvironmentVariables_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"port not a number", "PORT", "http", "PORT must be"},
		{"port out of range", "PORT", "70000", "PORT must be"},
		{"negative port", "PORT", "-1", "PORT must be"},
		{"unknown log level", "LOG_LEVEL", "trace", "LOG_LEVEL must be"},
		{"unknown exporter", "TRACING_EXPORTER", "zipkin", "TRACING_EXPORTER must be"},
		{"otlp without endpoint", "TRACING_EXPORTER", "otlp", "OTEL_EXPORTER_OTLP_ENDPOINT"},
		{"docs not bool", "DOCS_ENABLED", "maybe", "DOCS_ENABLED must be"},
		{"bad duration", "SHUTDOWN_TIMEOUT", "soon", "SHUTDOWN_TIMEOUT must be"},
		{"negative duration", "SHUTDOWN_TIMEOUT", "-1s", "SHUTDOWN_TIMEOUT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadEnvironmentVariables()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := &Config{Addr: "0.0.0.0", Port: DefaultPort}

	require.NoError(t, cfg.ApplyFlags(Flags{}))
	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddress())

	require.NoError(t, cfg.ApplyFlags(Flags{Addr: "localhost", Port: "3000"}))
	assert.Equal(t, "localhost:3000", cfg.ListenAddress())

	require.NoError(t, cfg.ApplyFlags(Flags{Port: "0"}))
	assert.Equal(t, "localhost:0", cfg.ListenAddress(), "port 0 binds an ephemeral port")

	err := cfg.ApplyFlags(Flags{Port: "99999"})
	assert.Error(t, err)
	assert.Equal(t, "0", cfg.Port, "invalid flag leaves config untouched")
}
