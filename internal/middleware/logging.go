package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/newsletter-api/pkg/logger"
)

// LoggingMiddleware logs all incoming requests with timing
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method
		clientIP := c.ClientIP()

		requestID, _ := c.Get(RequestIDKey)
		requestIDStr := ""
		if requestID != nil {
			requestIDStr = requestID.(string)
		}

		event := logger.Log.Info()
		if status >= 400 {
			event = logger.Log.Warn()
		}
		if status >= 500 {
			event = logger.Log.Error()
		}

		event.
			Str("method", method).
			Str("path", path).
			Str("query", rawQuery).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", clientIP).
			Str("request_id", requestIDStr).
			Int("body_size", c.Writer.Size()).
			Msg("request")
	}
}
