package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows cross-origin reads of the read-only endpoints.
// An empty list or a list containing "*" allows every origin.
//
// Simple requests from an origin that is not listed are served without CORS
// headers instead of being rejected, leaving enforcement to the browser.
// Preflights from such origins are still refused.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", "Traceparent", "Tracestate"},
		ExposeHeaders: []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        12 * time.Hour,
	}

	if allowsAll(origins) {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}

	cfg.AllowOrigins = origins
	handler := cors.New(cfg)

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && !allowed[origin] && c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		handler(c)
	}
}

func allowsAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}

	for _, o := range origins {
		if o == "*" {
			return true
		}
	}

	return false
}
