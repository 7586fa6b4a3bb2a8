package logger

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware logs one record per request once the handler chain has run.
// 5xx responses log at error, 4xx at warn, everything else at info.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()

		lvl := slog.LevelInfo
		switch {
		case status >= 500:
			lvl = slog.LevelError
		case status >= 400:
			lvl = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		FromContext(c.Request.Context()).Log(c.Request.Context(), lvl, "request handled", attrs...)
	}
}
