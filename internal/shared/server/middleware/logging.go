package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/shared/metrics"
	"annadata-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request and counts it by route.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), status)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"is_guest":    IsGuest(c),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if source := c.GetString("aiSource"); source != "" {
			fields["ai_source"] = source
		}
		telemetry.Info("request.complete", fields)
	}
}
