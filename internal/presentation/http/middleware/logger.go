package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware creates a structured logging middleware. Every request
// gets an X-Request-ID (generated when the client sends none) that is
// echoed back and prefixed on the log lines.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		// Client-supplied IDs can be any length; only truncate long ones.
		logID := requestID
		if len(logID) > 8 {
			logID = logID[:8]
		}

		log.Printf("[%s] %s | %d | %v | %s | %s",
			logID,
			c.Request.Method,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			path,
		)

		for _, e := range c.Errors {
			log.Printf("[%s] Error: %v", logID, e.Err)
		}
	}
}
