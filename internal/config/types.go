package config

import "time"

type Config struct {
	Environment string
	Addr        string
	Port        string
	LogLevel    string

	CORSAllowedOrigins []string

	// proxies whose X-Forwarded-For is honored, empty trusts none
	TrustedProxies []string

	// ulule/limiter formatted rate ("100-S"), empty disables limiting
	RateLimit string

	TracingExporter string
	OTLPEndpoint    string

	DocsEnabled     bool
	ShutdownTimeout time.Duration
}

// values supplied on the command line, empty fields keep the environment value
type Flags struct {
	Addr string
	Port string
}
