package middleware

import (
	"strconv"
	"time"

	"cheese-api/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per route template, so
// /api/cheeses/1 and /api/cheeses/2 share one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
