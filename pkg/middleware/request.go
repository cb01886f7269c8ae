package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentmanagement/students-api/pkg/logger"
	"github.com/studentmanagement/students-api/pkg/metrics"
)

// RequestLogger logs one structured line per request and records the HTTP
// request metrics. Routes are labelled by their pattern, not the raw path.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		l := logger.WithFields(map[string]interface{}{
			"method":    c.Request.Method,
			"route":     route,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latencyMs": elapsed.Milliseconds(),
			"clientIp":  c.ClientIP(),
		})
		switch {
		case status >= 500:
			l.Error().Msg("request")
		case status >= 400:
			l.Warn().Msg("request")
		default:
			l.Info().Msg("request")
		}
	}
}

// CORS sets permissive cross-origin headers and answers preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
