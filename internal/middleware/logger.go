package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/workforce-management-api/internal/metrics"
	"github.com/yukikurage/workforce-management-api/internal/utils"
)

// RequestLogger writes one structured line per request and updates the HTTP metrics.
func RequestLogger(logger zerolog.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		if m != nil {
			m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(latency.Seconds())
		}

		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", utils.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)).
			Msg("request")
	}
}
