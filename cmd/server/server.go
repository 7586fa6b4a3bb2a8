package main

import (
	"fmt"
	"net/http"

	"codeberg.org/devops-project/server/internal/config"
	apperrors "codeberg.org/devops-project/server/internal/errors"
	"codeberg.org/devops-project/server/internal/logger"
	"codeberg.org/devops-project/server/internal/middleware"
	"codeberg.org/devops-project/server/internal/tracing"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	rateLimit, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to configure rate limiting: %w", err)
	}

	router := gin.New()

	// unknown method on a known path answers 405 instead of 404
	router.HandleMethodNotAllowed = true

	// ClientIP keys the rate limiter, so forwarded headers are only honored
	// from configured proxies
	if err := router.SetTrustedProxies(trustedProxies(cfg.TrustedProxies)); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(
		apperrors.Recovery(),
		logger.Middleware(),
		tracing.Middleware(nil),
		middleware.CORS(cfg.CORSAllowedOrigins),
		rateLimit,
	)

	router.NoRoute(apperrors.NoRoute())
	router.NoMethod(apperrors.NoMethod())

	server := &Server{
		config: cfg,
		router: router,
	}

	RegisterRoutes(router, server)

	logger.Debug("server configured",
		"cors_origins", cfg.CORSAllowedOrigins,
		"rate_limit", cfg.RateLimit,
		"trusted_proxies", cfg.TrustedProxies,
		"docs_enabled", cfg.DocsEnabled,
	)

	return server, nil
}

// nil tells gin to trust no proxy at all
func trustedProxies(proxies []string) []string {
	if len(proxies) == 0 {
		return nil
	}

	return proxies
}

func (s *Server) Handler() http.Handler {
	return s.router
}
