package middleware

import (
	"net/http"

	"cheese-api/internal/observability/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimit throttles all requests through one token bucket refilled at
// rps tokens per second with the given burst. Rejected requests get 429.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			metrics.HTTPRequestsRateLimited.Inc()
			log.WithField("request_id", c.GetString(ctxRequestID)).Warn("request rate limited")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
