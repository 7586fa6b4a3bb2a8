package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultShutdownTimeout = 10 * time.Second

	TracingNone   = "none"
	TracingStdout = "stdout"
	TracingOTLP   = "otlp"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, err
	}

	logLevel := strings.ToLower(os.Getenv("LOG_LEVEL"))
	switch logLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: got %q", logLevel)
	}

	tracingExporter := strings.ToLower(os.Getenv("TRACING_EXPORTER"))
	if tracingExporter == "" {
		tracingExporter = TracingNone
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	switch tracingExporter {
	case TracingNone, TracingStdout:
	case TracingOTLP:
		if otlpEndpoint == "" {
			return nil, fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT environment variable is required when TRACING_EXPORTER=otlp")
		}
	default:
		return nil, fmt.Errorf("TRACING_EXPORTER must be one of none, stdout, otlp: got %q", tracingExporter)
	}

	docsEnabled := environment != "production"
	if v := os.Getenv("DOCS_ENABLED"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DOCS_ENABLED must be a boolean: %w", err)
		}
		docsEnabled = parsed
	}

	shutdownTimeout := DefaultShutdownTimeout
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be a duration: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive: got %s", v)
		}
		shutdownTimeout = parsed
	}

	return &Config{
		Environment:        environment,
		Addr:               os.Getenv("ADDR"),
		Port:               port,
		LogLevel:           logLevel,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		TrustedProxies:     splitList(os.Getenv("TRUSTED_PROXIES")),
		RateLimit:          strings.TrimSpace(os.Getenv("RATE_LIMIT")),
		TracingExporter:    tracingExporter,
		OTLPEndpoint:       otlpEndpoint,
		DocsEnabled:        docsEnabled,
		ShutdownTimeout:    shutdownTimeout,
	}, nil
}

// returns the host:port the HTTP server binds to
func (c *Config) ListenAddress() string {
	return net.JoinHostPort(c.Addr, c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func validatePort(port string) error {
	// 0 asks the kernel for a free port
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("PORT must be a number between 0 and 65535: got %q", port)
	}

	return nil
}

// splits a comma separated list, dropping empty entries
func splitList(v string) []string {
	var out []string

	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
