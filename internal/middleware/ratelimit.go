package middleware

import (
	"fmt"

	apperrors "codeberg.org/devops-project/server/internal/errors"
	"codeberg.org/devops-project/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// probes must never be throttled
var rateLimitExemptPaths = map[string]bool{
	"/health": true,
}

// RateLimit throttles requests per client IP using an in-memory store.
// formatted follows ulule/limiter notation ("100-S", "1000-H").
// An empty string disables limiting.
func RateLimit(formatted string) (gin.HandlerFunc, error) {
	if formatted == "" {
		return func(c *gin.Context) { c.Next() }, nil
	}

	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	limit := mgin.NewMiddleware(
		limiter.New(memory.NewStore(), rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn("rate limit reached", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			apperrors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			apperrors.InternalError(c, "rate limiter failure", err)
		}),
	)

	return func(c *gin.Context) {
		if rateLimitExemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		limit(c)
	}, nil
}
